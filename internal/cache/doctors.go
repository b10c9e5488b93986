package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/medpoint/hospital-scheduler/internal/models"
)

const (
	doctorsKey = "doctors:directory"
	doctorsTTL = 5 * time.Minute
)

// DoctorDirectory caches the public doctor list in redis. A nil
// directory is a valid no-op cache, so the API runs without redis.
type DoctorDirectory struct {
	rdb *redis.Client
	log *zap.Logger
}

func NewDoctorDirectory(rdb *redis.Client, log *zap.Logger) *DoctorDirectory {
	if rdb == nil {
		return nil
	}
	return &DoctorDirectory{rdb: rdb, log: log}
}

func (d *DoctorDirectory) Get(ctx context.Context) ([]models.Doctor, bool) {
	if d == nil {
		return nil, false
	}

	raw, err := d.rdb.Get(ctx, doctorsKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			d.log.Warn("doctor cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var doctors []models.Doctor
	if err := json.Unmarshal(raw, &doctors); err != nil {
		return nil, false
	}
	return doctors, true
}

func (d *DoctorDirectory) Set(ctx context.Context, doctors []models.Doctor) {
	if d == nil {
		return
	}

	raw, err := json.Marshal(doctors)
	if err != nil {
		return
	}
	if err := d.rdb.Set(ctx, doctorsKey, raw, doctorsTTL).Err(); err != nil {
		d.log.Warn("doctor cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached directory after admin doctor mutations.
func (d *DoctorDirectory) Invalidate(ctx context.Context) {
	if d == nil {
		return
	}
	if err := d.rdb.Del(ctx, doctorsKey).Err(); err != nil {
		d.log.Warn("doctor cache invalidation failed", zap.Error(err))
	}
}
