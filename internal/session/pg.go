package session

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"

	"github.com/mohiniBalmiki/taxwise-web/internal/model"
	"github.com/mohiniBalmiki/taxwise-web/internal/pkg/dbutil"
	appErr "github.com/mohiniBalmiki/taxwise-web/internal/pkg/errors"
	"github.com/mohiniBalmiki/taxwise-web/internal/pkg/timeutil"
)

const sessionTable = "verified_sessions"

type pgStore struct {
	db *sql.DB
}

func NewPGStore(db *sql.DB) Store {
	return &pgStore{db: db}
}

func (s *pgStore) Set(ctx context.Context, sess *model.Session) error {
	if sess == nil || sess.ID == "" {
		return appErr.ErrInvalid
	}
	data := map[string]interface{}{
		"id":         sess.ID,
		"email":      sess.Email,
		"payload":    string(sess.Payload),
		"ctime":      sess.Ctime,
		"expires_at": sess.ExpiresAt,
	}
	sqlStr, args, err := builder.BuildInsert(sessionTable, []map[string]interface{}{data})
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	if _, err := s.db.ExecContext(ctx, sqlStr, args...); err != nil {
		if dbutil.IsConflict(err) {
			return s.update(ctx, sess)
		}
		return err
	}
	return nil
}

func (s *pgStore) update(ctx context.Context, sess *model.Session) error {
	where := map[string]interface{}{"id": sess.ID}
	update := map[string]interface{}{
		"email":      sess.Email,
		"payload":    string(sess.Payload),
		"ctime":      sess.Ctime,
		"expires_at": sess.ExpiresAt,
	}
	sqlStr, args, err := builder.BuildUpdate(sessionTable, where, update)
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	_, err = s.db.ExecContext(ctx, sqlStr, args...)
	return err
}

func (s *pgStore) Get(ctx context.Context, id string) (*model.Session, error) {
	where := map[string]interface{}{"id": id, "_limit": []uint{0, 1}}
	sqlStr, args, err := builder.BuildSelect(sessionTable, where, []string{"id", "email", "payload", "ctime", "expires_at"})
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := s.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	if !rows.Next() {
		return nil, appErr.ErrNotFound
	}
	var sess model.Session
	var payload string
	if err := rows.Scan(&sess.ID, &sess.Email, &payload, &sess.Ctime, &sess.ExpiresAt); err != nil {
		return nil, err
	}
	sess.Payload = []byte(payload)
	if sess.ExpiresAt > 0 && sess.ExpiresAt <= timeutil.NowUnix() {
		return nil, appErr.ErrNotFound
	}
	return &sess, nil
}

func (s *pgStore) Delete(ctx context.Context, id string) error {
	where := map[string]interface{}{"id": id}
	sqlStr, args, err := builder.BuildDelete(sessionTable, where)
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	result, err := s.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErr.ErrNotFound
	}
	return nil
}

func (s *pgStore) DeleteExpired(ctx context.Context, now int64) (int64, error) {
	where := map[string]interface{}{"expires_at <=": now, "expires_at >": 0}
	sqlStr, args, err := builder.BuildDelete(sessionTable, where)
	if err != nil {
		return 0, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	result, err := s.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
