package mongo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/imagehealth/clinic-dashboard/internal/core/domain"
	"github.com/imagehealth/clinic-dashboard/internal/core/ports"
)

const loginLogsCollection = "login_logs"

// LoginAttemptRepository implements ports.LoginAttemptRepository using MongoDB.
type LoginAttemptRepository struct {
	col *mongo.Collection
}

func NewLoginAttemptRepository(db *mongo.Database) ports.LoginAttemptRepository {
	return &LoginAttemptRepository{col: db.Collection(loginLogsCollection)}
}

// Insert appends an attempt to the login_logs audit collection.
func (r *LoginAttemptRepository) Insert(ctx context.Context, a *domain.LoginAttempt) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	doc := bson.M{
		"_id":          a.ID,
		"username":     a.Username,
		"login_time":   a.At.UTC(),
		"ip_address":   a.IP,
		"user_agent":   a.UserAgent,
		"success":      a.Success,
		"processed_at": time.Now().UTC(),
	}
	if a.Reason != "" {
		doc["reason"] = a.Reason
	}

	_, err := r.col.InsertOne(ctx, doc)
	return err
}
