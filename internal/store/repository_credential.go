package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

var credentialColumns = []string{
	"id", "user_id", "site_name", "site_url", "username",
	"encrypted_password", "created_at", "updated_at",
}

// credentialRepository is the SQL implementation of [CredentialRepository]
// over the "passwords" table. The encrypted_password column is stored
// verbatim; the server never interprets it.
type credentialRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		db:     db,
		logger: logger,
	}
}

// ListCredentials returns the records of userID, newest first.
func (r *credentialRepository) ListCredentials(ctx context.Context, userID int64) ([]models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(credentialColumns...).
		From(models.Credential{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.ListCredentials").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	credentials := make([]models.Credential, 0)
	if err = r.db.SelectContext(ctx, &credentials, query, args...); err != nil {
		log.Err(err).Str("func", "*credentialRepository.ListCredentials").Msg("error selecting credentials")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return credentials, nil
}

func (r *credentialRepository) GetCredential(ctx context.Context, id, userID int64) (models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(credentialColumns...).
		From(models.Credential{}.TableName()).
		Where(sq.And{sq.Eq{"id": id}, sq.Eq{"user_id": userID}}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.GetCredential").Msg("error building query")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var credential models.Credential
	if err = r.db.GetContext(ctx, &credential, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Credential{}, ErrCredentialNotFound
		}
		log.Err(err).Str("func", "*credentialRepository.GetCredential").Int64("id", id).Msg("error selecting credential")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return credential, nil
}

// CreateCredential inserts credential for credential.UserID and returns it
// with ID and timestamps set.
func (r *credentialRepository) CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error) {
	log := logger.FromContext(ctx)

	createdAt := now()
	query, args, err := r.db.builder.
		Insert(models.Credential{}.TableName()).
		Columns("user_id", "site_name", "site_url", "username", "encrypted_password", "created_at", "updated_at").
		Values(credential.UserID, credential.SiteName, credential.SiteURL, credential.Username,
			string(credential.EncryptedPassword), createdAt, createdAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.CreateCredential").Msg("error building query")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = r.db.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).Str("func", "*credentialRepository.CreateCredential").Msg("error inserting credential")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	credential.ID = id
	credential.CreatedAt = createdAt
	credential.UpdatedAt = createdAt
	log.Debug().Str("func", "*credentialRepository.CreateCredential").Int64("id", id).Msg("credential created")

	return credential, nil
}

// UpdateCredential overwrites the site fields and the ciphertext of an
// existing record and refreshes updated_at. The stored row is returned.
func (r *credentialRepository) UpdateCredential(ctx context.Context, credential models.Credential) (models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(models.Credential{}.TableName()).
		Set("site_name", credential.SiteName).
		Set("site_url", credential.SiteURL).
		Set("username", credential.Username).
		Set("encrypted_password", string(credential.EncryptedPassword)).
		Set("updated_at", now()).
		Where(sq.And{sq.Eq{"id": credential.ID}, sq.Eq{"user_id": credential.UserID}}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.UpdateCredential").Msg("error building query")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffectingOne(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*credentialRepository.UpdateCredential").Int64("id", credential.ID).Msg("error updating credential")
		return models.Credential{}, err
	}

	return r.GetCredential(ctx, credential.ID, credential.UserID)
}

func (r *credentialRepository) DeleteCredential(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(models.Credential{}.TableName()).
		Where(sq.And{sq.Eq{"id": id}, sq.Eq{"user_id": userID}}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.DeleteCredential").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffectingOne(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*credentialRepository.DeleteCredential").Int64("id", id).Msg("error deleting credential")
		return err
	}

	return nil
}

// execAffectingOne runs a statement addressed to a single owned row and
// returns [ErrCredentialNotFound] when no row matched.
func (r *credentialRepository) execAffectingOne(ctx context.Context, query string, args ...any) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCredentialNotFound
	}

	return nil
}
