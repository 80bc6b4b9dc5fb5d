package store

import (
	"errors"

	"beacon-care-server/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Persister reads and writes the opaque serialized snapshot. Save is
// called after every committed mutation and is best-effort: the store
// logs failures and moves on.
type Persister interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

const snapshotRowID = 1

// DBPersister keeps the snapshot in a single database row.
type DBPersister struct {
	DB *gorm.DB
}

// NewDBPersister creates a persister backed by the given database.
func NewDBPersister(db *gorm.DB) *DBPersister {
	return &DBPersister{DB: db}
}

// Load returns the persisted snapshot bytes, or nil when no snapshot
// has been written yet.
func (p *DBPersister) Load() ([]byte, error) {
	var row models.StateSnapshot
	if err := p.DB.First(&row, "id = ?", snapshotRowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return []byte(row.Data), nil
}

// Save overwrites the snapshot row with the given bytes.
func (p *DBPersister) Save(data []byte) error {
	row := models.StateSnapshot{
		ID:   snapshotRowID,
		Data: datatypes.JSON(data),
	}
	return p.DB.Save(&row).Error
}
