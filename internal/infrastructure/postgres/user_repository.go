package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/directorio-api/internal/domain"
	"github.com/jhoicas/directorio-api/internal/domain/entity"
	"github.com/jhoicas/directorio-api/internal/domain/repository"
)

// Asegura que UserRepo implementa repository.UserRepository.
var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const selectUser = `
	SELECT a.id, a.username, a.password, a.first_name, a.last_name, a.kind, a.registration_date,
	       u.document_type, u.document_id, u.birth_date, u.phone_number, u.importance,
	       u.allow_call, u.allow_sms, u.allow_email
	FROM users u JOIN accounts a ON a.id = u.id`

func scanUser(row rowScanner) (*entity.User, error) {
	var (
		u        entity.User
		username *string
		password *string
		kind     string
	)
	err := row.Scan(
		&u.ID, &username, &password, &u.FirstName, &u.LastName, &kind, &u.RegisteredAt,
		&u.Document.Type, &u.Document.ID, &u.BirthDate, &u.PhoneNumber, &u.Importance,
		&u.AllowCall, &u.AllowSMS, &u.AllowEmail,
	)
	if err != nil {
		return nil, err
	}
	u.Username = derefString(username)
	u.PasswordHash = derefString(password)
	u.Kind = entity.Kind(kind)
	return &u, nil
}

// Create persiste la cuenta base y el usuario.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := insertAccount + `
		INSERT INTO users (id, document_type, document_id, birth_date, phone_number, importance, allow_call, allow_sms, allow_email)
		SELECT id, $8, $9, $10, $11, $12, $13, $14, $15 FROM acc`
	args := append(accountArgs(user.Account),
		user.Document.Type, user.Document.ID, user.BirthDate, user.PhoneNumber,
		user.Importance, user.AllowCall, user.AllowSMS, user.AllowEmail,
	)
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return errDuplicate(err)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepo) getOne(ctx context.Context, where string, args ...any) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, selectUser+" WHERE "+where, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getOne(ctx, "u.id = $1", id)
}

// GetByDocument obtiene un usuario por (tipo, número) de documento.
func (r *UserRepo) GetByDocument(ctx context.Context, doc entity.Document) (*entity.User, error) {
	return r.getOne(ctx, "u.document_type = $1 AND u.document_id = $2", doc.Type, doc.ID)
}

// GetByUsername obtiene un usuario por login.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.getOne(ctx, "a.username = $1", username)
}

// Update sobrescribe login y datos personales; el documento y la fecha de registro no cambian.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		WITH acc AS (
			UPDATE accounts SET username = $2, password = $3, first_name = $4, last_name = $5
			WHERE id = $1
			RETURNING id
		)
		UPDATE users u SET birth_date = $6, phone_number = $7, importance = $8,
		       allow_call = $9, allow_sms = $10, allow_email = $11
		FROM acc WHERE u.id = acc.id`
	cmd, err := r.q.Exec(ctx, query,
		user.ID, nullIfEmpty(user.Username), nullIfEmpty(user.PasswordHash), user.FirstName, user.LastName,
		user.BirthDate, user.PhoneNumber, user.Importance, user.AllowCall, user.AllowSMS, user.AllowEmail,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return errDuplicate(err)
		}
		return fmt.Errorf("update user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("user not found")
	}
	return nil
}
