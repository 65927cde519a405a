package auth

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/argon2"

	"github.com/smartchessacademy/website/src/db"
	"github.com/smartchessacademy/website/src/models"
	"github.com/smartchessacademy/website/src/oops"
)

const MinPasswordLength = 6

type HashAlgorithm string

const Argon2id HashAlgorithm = "argon2id"

const saltLength = 16
const keyLength = 64

type HashedPassword struct {
	Algorithm  HashAlgorithm
	AlgoConfig string // arbitrary info describing the hash parameters (e.g. work factor)

	// Always kept in a form that can go straight into the database
	// (base64-encoded).
	Salt string
	Hash string
}

func ParsePasswordString(s string) (HashedPassword, error) {
	pieces := strings.SplitN(s, "$", 4)
	if len(pieces) < 4 {
		return HashedPassword{}, oops.New(nil, "unrecognized password string format")
	}

	return HashedPassword{
		Algorithm:  HashAlgorithm(pieces[0]),
		AlgoConfig: pieces[1],
		Salt:       pieces[2],
		Hash:       pieces[3],
	}, nil
}

func (p HashedPassword) String() string {
	return fmt.Sprintf("%s$%s$%s$%s", p.Algorithm, p.AlgoConfig, p.Salt, p.Hash)
}

type Argon2idConfig struct {
	Time      uint32
	Memory    uint32
	Threads   uint8
	KeyLength uint32
}

func ParseArgon2idConfig(cfg string) (Argon2idConfig, error) {
	parts := strings.Split(cfg, ",")
	if len(parts) < 4 {
		return Argon2idConfig{}, oops.New(nil, "unrecognized Argon2id config format")
	}

	t64, err := strconv.ParseUint(parts[0][2:], 10, 32)
	if err != nil {
		return Argon2idConfig{}, oops.New(err, "failed to parse time in Argon2id config")
	}

	m64, err := strconv.ParseUint(parts[1][2:], 10, 32)
	if err != nil {
		return Argon2idConfig{}, oops.New(err, "failed to parse memory in Argon2id config")
	}

	p64, err := strconv.ParseUint(parts[2][2:], 10, 8)
	if err != nil {
		return Argon2idConfig{}, oops.New(err, "failed to parse threads in Argon2id config")
	}

	l64, err := strconv.ParseUint(parts[3][2:], 10, 32)
	if err != nil {
		return Argon2idConfig{}, oops.New(err, "failed to parse key length in Argon2id config")
	}

	return Argon2idConfig{
		Time:      uint32(t64),
		Memory:    uint32(m64),
		Threads:   uint8(p64),
		KeyLength: uint32(l64),
	}, nil
}

func (c Argon2idConfig) String() string {
	return fmt.Sprintf("t=%v,m=%v,p=%v,l=%v", c.Time, c.Memory, c.Threads, c.KeyLength)
}

func CheckPassword(password string, hashedPassword HashedPassword) (bool, error) {
	switch hashedPassword.Algorithm {
	case Argon2id:
		cfg, err := ParseArgon2idConfig(hashedPassword.AlgoConfig)
		if err != nil {
			return false, err
		}

		salt, err := base64.StdEncoding.DecodeString(hashedPassword.Salt)
		if err != nil {
			return false, oops.New(err, "failed to decode salt")
		}

		newHash := argon2.IDKey([]byte(password), salt, cfg.Time, cfg.Memory, cfg.Threads, cfg.KeyLength)
		newHashEnc := base64.StdEncoding.EncodeToString(newHash)

		return bytes.Equal([]byte(newHashEnc), []byte(hashedPassword.Hash)), nil
	default:
		return false, oops.New(nil, "unrecognized password hash algorithm: %s", hashedPassword.Algorithm)
	}
}

func HashPassword(password string) HashedPassword {
	// Follows the OWASP recommendations as of March 2021.
	// https://cheatsheetseries.owasp.org/cheatsheets/Password_Storage_Cheat_Sheet.html

	salt := make([]byte, saltLength)
	io.ReadFull(rand.Reader, salt)
	saltEnc := base64.StdEncoding.EncodeToString(salt)

	cfg := Argon2idConfig{
		Time:      1,
		Memory:    40 * 1024, // this is in KiB for some reason
		Threads:   1,
		KeyLength: keyLength,
	}

	key := argon2.IDKey([]byte(password), salt, cfg.Time, cfg.Memory, cfg.Threads, cfg.KeyLength)
	keyEnc := base64.StdEncoding.EncodeToString(key)

	return HashedPassword{
		Algorithm:  Argon2id,
		AlgoConfig: cfg.String(),
		Salt:       saltEnc,
		Hash:       keyEnc,
	}
}

var ErrUserDoesNotExist = errors.New("user does not exist")
var ErrEmailTaken = errors.New("email is already registered")
var ErrUsernameTaken = errors.New("username is already taken")

// CreateUser registers a new account. The profile row shares the user's
// id and is created in the same transaction.
func CreateUser(ctx context.Context, conn db.ConnOrTx, email, username, password string, status models.UserStatus) (*models.User, error) {
	hashed := HashPassword(password)

	tx, err := conn.Begin(ctx)
	if err != nil {
		return nil, oops.New(err, "failed to start transaction")
	}
	defer tx.Rollback(ctx)

	user, err := db.QueryOne[models.User](ctx, tx,
		`
		INSERT INTO sca_user (id, email, password, status)
		VALUES ($1, $2, $3, $4)
		RETURNING $columns
		`,
		uuid.New(), strings.ToLower(email), hashed.String(), status,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, oops.New(err, "failed to create user")
	}

	_, err = tx.Exec(ctx,
		`
		INSERT INTO profile (id, username)
		VALUES ($1, $2)
		`,
		user.ID, username,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, oops.New(err, "failed to create profile")
	}

	err = tx.Commit(ctx)
	if err != nil {
		return nil, oops.New(err, "failed to commit new user")
	}

	return user, nil
}

// ValidateEmailAndPassword checks the credentials and returns the user
// on success. Returns ErrUserDoesNotExist for a bad email or a bad
// password, callers should not distinguish the two.
func ValidateEmailAndPassword(ctx context.Context, conn db.ConnOrTx, email, password string) (*models.User, error) {
	user, err := db.QueryOne[models.User](ctx, conn,
		`
		SELECT $columns
		FROM sca_user
		WHERE lower(email) = lower($1)
		`,
		email,
	)
	if err != nil {
		if errors.Is(err, db.NotFound) {
			return nil, ErrUserDoesNotExist
		}
		return nil, oops.New(err, "failed to look up user by email")
	}

	hashed, err := ParsePasswordString(user.Password)
	if err != nil {
		return nil, err
	}

	ok, err := CheckPassword(password, hashed)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUserDoesNotExist
	}

	return user, nil
}

func ConfirmUser(ctx context.Context, conn db.ConnOrTx, userID uuid.UUID) error {
	tag, err := conn.Exec(ctx,
		"UPDATE sca_user SET status = $1 WHERE id = $2",
		models.UserStatusConfirmed, userID,
	)
	if err != nil {
		return oops.New(err, "failed to confirm user")
	} else if tag.RowsAffected() < 1 {
		return ErrUserDoesNotExist
	}

	return nil
}

func TouchLastLogin(ctx context.Context, conn db.ConnOrTx, userID uuid.UUID) error {
	_, err := conn.Exec(ctx,
		"UPDATE sca_user SET last_login = $1 WHERE id = $2",
		time.Now(), userID,
	)
	if err != nil {
		return oops.New(err, "failed to update last login")
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
