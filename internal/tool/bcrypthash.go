package tool

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"devtoolbox/internal/model"
	"devtoolbox/pkg/utils"
)

func init() {
	Register(&bcryptTool{})
}

// bcryptTool hashes and verifies passwords with real bcrypt. Cost values
// outside [bcrypt.MinCost, bcrypt.MaxCost] are clamped, not rejected.
type bcryptTool struct{}

func (t *bcryptTool) Name() string     { return "bcrypt" }
func (t *bcryptTool) Category() string { return "security" }

func (t *bcryptTool) Apply(in model.GenericInput, settings model.Settings) (model.GenericOutput, error) {
	password := stringField(in, "password")
	if password == "" {
		return nil, fmt.Errorf("password is required")
	}
	if len(password) > 72 {
		// bcrypt truncates silently past 72 bytes; reject instead
		return nil, fmt.Errorf("password exceeds bcrypt's 72-byte limit")
	}

	mode := stringField(in, "mode")
	switch mode {
	case "verify":
		return t.verify(in, password)
	case "", "hash":
		return t.hash(in, password, settings)
	default:
		// unsupported mode falls through to the default
		return t.hash(in, password, settings)
	}
}

func (t *bcryptTool) hash(in model.GenericInput, password string, settings model.Settings) (model.GenericOutput, error) {
	cost := settings.BcryptCost
	if hasField(in, "cost") {
		cost = int(numField(in, "cost", float64(bcrypt.DefaultCost)))
	}
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	cost = utils.ClampInt(cost, bcrypt.MinCost, bcrypt.MaxCost)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, fmt.Errorf("bcrypt hashing failed: %w", err)
	}

	return model.GenericOutput{
		"hash":      string(hash),
		"cost":      cost,
		"algorithm": "bcrypt",
	}, nil
}

func (t *bcryptTool) verify(in model.GenericInput, password string) (model.GenericOutput, error) {
	hash := stringField(in, "hash")
	if hash == "" {
		return nil, fmt.Errorf("hash is required for verify mode")
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	match := err == nil
	if err != nil && err != bcrypt.ErrMismatchedHashAndPassword {
		return nil, fmt.Errorf("invalid bcrypt hash: %w", err)
	}

	cost, _ := bcrypt.Cost([]byte(hash))
	return model.GenericOutput{
		"match":     match,
		"cost":      cost,
		"algorithm": "bcrypt",
	}, nil
}
