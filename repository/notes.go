package repository

import (
	"context"
	"fmt"
	"time"

	"jotbox/model"
	"jotbox/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const notesCollection = "notes"

type NotesRepo struct {
	MongoCollection *mongo.Collection
}

func NewNotesRepo(db *mongo.Database) *NotesRepo {
	return &NotesRepo{
		MongoCollection: db.Collection(notesCollection),
	}
}

func (r *NotesRepo) Insert(ctx context.Context, note *model.Note) error {
	timer := utils.TrackDBOperation("insert", notesCollection)
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, note)
	if err != nil {
		utils.TrackError("database", "note_insert_failed")
		return fmt.Errorf("failed to insert note: %w", err)
	}

	return nil
}

// FindByOwner returns all notes belonging to a user, most recently updated
// first. The created_at tiebreak keeps the order stable for untouched notes.
func (r *NotesRepo) FindByOwner(ctx context.Context, ownerID string) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", notesCollection)
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{
		{Key: "updated_at", Value: -1},
		{Key: "created_at", Value: -1},
	})

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": ownerID}, opts)
	if err != nil {
		utils.TrackError("database", "note_list_failed")
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer cursor.Close(ctx)

	notes := []*model.Note{}
	if err := cursor.All(ctx, &notes); err != nil {
		utils.TrackError("database", "note_list_failed")
		return nil, fmt.Errorf("failed to decode notes: %w", err)
	}

	return notes, nil
}

// FindByID looks up a single note. Every filter includes the owner id, so a
// note owned by someone else is indistinguishable from one that does not exist.
func (r *NotesRepo) FindByID(ctx context.Context, ownerID, noteID string) (*model.Note, error) {
	timer := utils.TrackDBOperation("find", notesCollection)
	defer timer.ObserveDuration()

	var note model.Note
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": noteID, "user_id": ownerID}).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, model.ErrNoteNotFound
		}
		utils.TrackError("database", "note_lookup_failed")
		return nil, fmt.Errorf("failed to find note: %w", err)
	}

	return &note, nil
}

// Update applies a partial patch atomically and returns the resulting note.
func (r *NotesRepo) Update(ctx context.Context, ownerID, noteID string, patch model.NotePatch) (*model.Note, error) {
	timer := utils.TrackDBOperation("update", notesCollection)
	defer timer.ObserveDuration()

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Content != nil {
		set["content"] = *patch.Content
	}

	filter := bson.M{"_id": noteID, "user_id": ownerID}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated model.Note
	err := r.MongoCollection.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, model.ErrNoteNotFound
		}
		utils.TrackError("database", "note_update_failed")
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return &updated, nil
}

func (r *NotesRepo) Delete(ctx context.Context, ownerID, noteID string) error {
	timer := utils.TrackDBOperation("delete", notesCollection)
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": noteID, "user_id": ownerID})
	if err != nil {
		utils.TrackError("database", "note_delete_failed")
		return fmt.Errorf("failed to delete note: %w", err)
	}

	if result.DeletedCount == 0 {
		return model.ErrNoteNotFound
	}

	return nil
}
