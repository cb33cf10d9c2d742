package store

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/swipeschedule/ss_backendl/models"
)

// MaxShifts caps every listing. A protective bound, not pagination.
const MaxShifts = 500

// ShiftStore reads shift documents from MongoDB. The connection is
// established lazily on first use and shared for the process lifetime.
// The store never writes; defaults are applied per read only.
type ShiftStore struct {
	uri    string
	dbName string

	mu   sync.Mutex
	coll *mongo.Collection
}

func NewShiftStore(uri, dbName string) *ShiftStore {
	return &ShiftStore{uri: uri, dbName: dbName}
}

func (s *ShiftStore) collection(ctx context.Context) (*mongo.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.coll != nil {
		return s.coll, nil
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		// Tear the client down, or every failed request leaks its
		// monitor goroutines until restart.
		client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	log.Printf("Connected to MongoDB: %s", s.dbName)

	s.coll = client.Database(s.dbName).Collection("shifts")
	return s.coll, nil
}

// ListShifts returns normalized shifts whose start falls in [from, to),
// ascending by start, capped at MaxShifts. A nil bound omits that side of
// the filter; both nil returns everything up to the cap.
func (s *ShiftStore) ListShifts(ctx context.Context, from, to *time.Time) ([]models.Shift, error) {
	coll, err := s.collection(ctx)
	if err != nil {
		return nil, err
	}

	filter := bson.M{}
	if from != nil || to != nil {
		window := bson.M{}
		if from != nil {
			window["$gte"] = *from
		}
		if to != nil {
			window["$lt"] = *to
		}
		filter["shiftstart_datetime"] = window
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "shiftstart_datetime", Value: 1}}).
		SetLimit(MaxShifts)

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo find: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []models.ShiftDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongo decode: %w", err)
	}

	shifts := make([]models.Shift, 0, len(docs))
	for _, d := range docs {
		shifts = append(shifts, d.Normalize())
	}
	return shifts, nil
}
