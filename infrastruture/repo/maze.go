package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-solver/domain"
	"github.com/beka-birhanu/vinom-solver/maze"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mazeDocument is the BSON form of a maze record. Walls holds one wall mask per
// cell in row-major order.
type mazeDocument struct {
	ID        uuid.UUID `bson:"_id"`
	OwnerID   uuid.UUID `bson:"ownerId"`
	Rows      int       `bson:"rows"`
	Cols      int       `bson:"cols"`
	Walls     []int32   `bson:"walls"`
	CreatedAt time.Time `bson:"createdAt"`
}

// MazeRepo handles the persistence of submitted mazes.
type MazeRepo struct {
	collection *mongo.Collection
	timeout    time.Duration
}

// NewMazeRepo creates a new MazeRepo with the given MongoDB client, database name, and collection name.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string) *MazeRepo {
	return &MazeRepo{
		collection: client.Database(dbName).Collection(collectionName),
		timeout:    2 * time.Second,
	}
}

// Save inserts or replaces a maze record.
func (r *MazeRepo) Save(ctx context.Context, record *dmn.MazeRecord) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	doc := toDocument(record)
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, opts); err != nil {
		return fmt.Errorf("saving maze %s: %w", record.ID, err)
	}
	return nil
}

// ByID retrieves a maze record by its ID.
// Returns dmn.ErrMazeNotFound if the maze is not found.
func (r *MazeRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var doc mazeDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dmn.ErrMazeNotFound
		}
		return nil, fmt.Errorf("finding maze %s: %w", id, err)
	}
	return fromDocument(&doc)
}

func toDocument(record *dmn.MazeRecord) *mazeDocument {
	m := record.Maze
	walls := make([]int32, 0, m.Rows()*m.Columns())
	for row := 0; row < m.Rows(); row++ {
		for col := 0; col < m.Columns(); col++ {
			walls = append(walls, int32(m.Cell(row, col).WallMask()))
		}
	}
	return &mazeDocument{
		ID:        record.ID,
		OwnerID:   record.OwnerID,
		Rows:      m.Rows(),
		Cols:      m.Columns(),
		Walls:     walls,
		CreatedAt: record.CreatedAt,
	}
}

func fromDocument(doc *mazeDocument) (*dmn.MazeRecord, error) {
	if doc.Rows <= 0 || doc.Cols <= 0 || len(doc.Walls) != doc.Rows*doc.Cols {
		return nil, fmt.Errorf("%w: stored maze %s has %d wall entries for %dx%d", dmn.ErrInvalidMaze, doc.ID, len(doc.Walls), doc.Rows, doc.Cols)
	}

	cells := make([][]maze.Cell, doc.Rows)
	for row := range cells {
		cells[row] = make([]maze.Cell, doc.Cols)
		for col := range cells[row] {
			cells[row][col] = maze.CellFromWallMask(uint8(doc.Walls[row*doc.Cols+col]))
		}
	}
	m, err := maze.FromCells(cells)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", dmn.ErrInvalidMaze, err)
	}

	return &dmn.MazeRecord{
		ID:        doc.ID,
		OwnerID:   doc.OwnerID,
		Maze:      m,
		CreatedAt: doc.CreatedAt,
	}, nil
}
