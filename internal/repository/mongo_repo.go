package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"todo_backend/internal/models"
	"todo_backend/internal/repository/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ---- users ----

type UserMongo struct {
	coll *mongo.Collection
}

func NewUserMongo(mdb *mongo.Database) *UserMongo {
	return &UserMongo{coll: mdb.Collection(db.UsersCollection)}
}

var _ Authorization = (*UserMongo)(nil)

func (r *UserMongo) Create(ctx context.Context, u models.User) error {
	u.CreatedAt = u.CreatedAt.UTC()
	if _, err := r.coll.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("insert user %q: %w", u.Email, ErrDuplicate)
		}
		return fmt.Errorf("insert user %q: %w", u.Email, err)
	}
	return nil
}

func (r *UserMongo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserMongo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserMongo) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var u models.User
	if err := r.coll.FindOne(ctx, filter).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return &u, nil
}

// ---- todos ----

type TodoMongo struct {
	coll *mongo.Collection
}

func NewTodoMongo(mdb *mongo.Database) *TodoMongo {
	return &TodoMongo{coll: mdb.Collection(db.TodosCollection)}
}

var _ TodoRepo = (*TodoMongo)(nil)

func ownedTodoFilter(userID, id string) bson.M {
	return bson.M{"_id": id, "user_id": userID}
}

func todoUpdateDoc(p TodoPatch) bson.M {
	set := bson.M{
		"is_done":    p.IsDone,
		"updated_at": p.UpdatedAt.UTC(),
	}
	if p.Content != nil {
		set["content"] = *p.Content
	}
	return bson.M{"$set": set}
}

func (r *TodoMongo) Create(ctx context.Context, t models.Todo) error {
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	if _, err := r.coll.InsertOne(ctx, t); err != nil {
		return fmt.Errorf("insert todo: %w", err)
	}
	return nil
}

func (r *TodoMongo) Update(ctx context.Context, userID, id string, p TodoPatch) (models.Todo, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var t models.Todo
	err := r.coll.FindOneAndUpdate(ctx, ownedTodoFilter(userID, id), todoUpdateDoc(p), opts).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Todo{}, ErrNotFound
		}
		return models.Todo{}, fmt.Errorf("update todo %q: %w", id, err)
	}
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return t, nil
}

func (r *TodoMongo) Delete(ctx context.Context, userID, id string) error {
	res, err := r.coll.DeleteOne(ctx, ownedTodoFilter(userID, id))
	if err != nil {
		return fmt.Errorf("delete todo %q: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TodoMongo) ListByUser(ctx context.Context, userID string) ([]models.Todo, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	out := make([]models.Todo, 0, 16)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode todos: %w", err)
	}
	for i := range out {
		out[i].CreatedAt = out[i].CreatedAt.UTC()
		out[i].UpdatedAt = out[i].UpdatedAt.UTC()
	}
	return out, nil
}

func (r *TodoMongo) Stats(ctx context.Context, userID string) (models.TodoStats, error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return models.TodoStats{}, fmt.Errorf("count todos: %w", err)
	}
	done, err := r.coll.CountDocuments(ctx, bson.M{"user_id": userID, "is_done": true})
	if err != nil {
		return models.TodoStats{}, fmt.Errorf("count done todos: %w", err)
	}
	return models.TodoStats{Total: int(total), Done: int(done), Pending: int(total - done)}, nil
}

// ---- activity ----

type EventMongo struct {
	coll *mongo.Collection
}

func NewEventMongo(mdb *mongo.Database) *EventMongo {
	return &EventMongo{coll: mdb.Collection(db.ActivityCollection)}
}

var _ EventRepo = (*EventMongo)(nil)

// eventDoc pins metadata to an embedded document so it decodes back as a map.
type eventDoc struct {
	EventID     string    `bson:"_id"`
	UserID      string    `bson:"user_id"`
	OccurredAt  time.Time `bson:"occurred_at"`
	Type        string    `bson:"type"`
	Description string    `bson:"description"`
	Metadata    bson.M    `bson:"metadata,omitempty"`
}

func metadataDoc(v any) bson.M {
	switch m := v.(type) {
	case nil:
		return nil
	case bson.M:
		return m
	case map[string]any:
		return bson.M(m)
	case map[string]string:
		out := make(bson.M, len(m))
		for k, s := range m {
			out[k] = s
		}
		return out
	default:
		return bson.M{"value": m}
	}
}

func toEventDoc(e models.ActivityEvent) eventDoc {
	e = normalizeEvent(e)
	return eventDoc{
		EventID:     e.EventID,
		UserID:      e.UserID,
		OccurredAt:  e.OccurredAt,
		Type:        e.Type,
		Description: e.Description,
		Metadata:    metadataDoc(e.Metadata),
	}
}

func (d eventDoc) model() models.ActivityEvent {
	ev := models.ActivityEvent{
		EventID:     d.EventID,
		UserID:      d.UserID,
		OccurredAt:  d.OccurredAt.UTC(),
		Type:        d.Type,
		Description: d.Description,
	}
	if len(d.Metadata) > 0 {
		ev.Metadata = map[string]any(d.Metadata)
	}
	return ev
}

// eventFilter mirrors the sqlite WHERE clause: inclusive bounds, zero means unbounded.
func eventFilter(userID string, from, to time.Time, typ string) bson.M {
	filter := bson.M{"user_id": userID}

	rng := bson.M{}
	if !from.IsZero() {
		rng["$gte"] = from.UTC()
	}
	if !to.IsZero() {
		rng["$lte"] = to.UTC()
	}
	if len(rng) > 0 {
		filter["occurred_at"] = rng
	}
	if typ = strings.ToUpper(strings.TrimSpace(typ)); typ != "" {
		filter["type"] = typ
	}
	return filter
}

func (r *EventMongo) Append(ctx context.Context, e models.ActivityEvent) error {
	if _, err := r.coll.InsertOne(ctx, toEventDoc(e)); err != nil {
		return fmt.Errorf("insert activity event: %w", err)
	}
	return nil
}

func (r *EventMongo) List(ctx context.Context, userID string, from, to time.Time, typ string) ([]models.ActivityEvent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "occurred_at", Value: 1}})
	cur, err := r.coll.Find(ctx, eventFilter(userID, from, to, typ), opts)
	if err != nil {
		return nil, fmt.Errorf("list activity events: %w", err)
	}
	var docs []eventDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode activity events: %w", err)
	}
	out := make([]models.ActivityEvent, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.model())
	}
	return out, nil
}

func (r *EventMongo) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"occurred_at": bson.M{"$lt": cutoff.UTC()}})
	if err != nil {
		return 0, fmt.Errorf("delete activity events: %w", err)
	}
	return res.DeletedCount, nil
}
