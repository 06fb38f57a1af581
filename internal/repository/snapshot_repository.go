package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/d60-Lab/peerpath/internal/model"
	"github.com/d60-Lab/peerpath/internal/store"
)

const batchSize = 200

// SnapshotRepository 把整个 Store 快照写入/读出数据库
type SnapshotRepository interface {
	Migrate(ctx context.Context) error
	// Save replaces every stored row with sn inside one transaction.
	Save(ctx context.Context, sn store.Snapshot) error
	// Load returns the stored snapshot; an empty database yields an empty
	// snapshot.
	Load(ctx context.Context) (store.Snapshot, error)
}

type snapshotRepository struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) SnapshotRepository { return &snapshotRepository{db: db} }

var tables = []any{
	&model.UserRecord{},
	&model.QuestionRecord{},
	&model.AnswerRecord{},
	&model.CommentRecord{},
	&model.MentionRecord{},
}

func (r *snapshotRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(tables...)
}

func (r *snapshotRepository) Save(ctx context.Context, sn store.Snapshot) error {
	rows := toRecords(sn)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, t := range tables {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(t).Error; err != nil {
				return fmt.Errorf("clear %T: %w", t, err)
			}
		}
		if err := createAll(tx, rows.users); err != nil {
			return err
		}
		if err := createAll(tx, rows.questions); err != nil {
			return err
		}
		if err := createAll(tx, rows.answers); err != nil {
			return err
		}
		if err := createAll(tx, rows.comments); err != nil {
			return err
		}
		return createAll(tx, rows.mentions)
	})
}

func createAll[T any](tx *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	if err := tx.CreateInBatches(rows, batchSize).Error; err != nil {
		var zero T
		return fmt.Errorf("insert %T: %w", zero, err)
	}
	return nil
}

func (r *snapshotRepository) Load(ctx context.Context) (store.Snapshot, error) {
	var rows records
	db := r.db.WithContext(ctx)
	if err := db.Order("position").Find(&rows.users).Error; err != nil {
		return store.Snapshot{}, err
	}
	if err := db.Order("position").Find(&rows.questions).Error; err != nil {
		return store.Snapshot{}, err
	}
	if err := db.Order("position").Find(&rows.answers).Error; err != nil {
		return store.Snapshot{}, err
	}
	if err := db.Order("answer_id, position").Find(&rows.comments).Error; err != nil {
		return store.Snapshot{}, err
	}
	if err := db.Order("position").Find(&rows.mentions).Error; err != nil {
		return store.Snapshot{}, err
	}
	return fromRecords(rows), nil
}
