package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/closet-stylist/internal/domain/auth"
)

const wardrobeJSON = `[
  {"id":"t1","name":"Oxford Shirt","category":"tops","color":"white","season":"all-season","styleTags":["button-up"]},
  {"id":"b1","name":"Wool Slacks","category":"bottoms","color":"gray","season":"fall","styleTags":[]},
  {"id":"s1","name":"Loafers","category":"shoes","color":"brown","season":"all-season","styleTags":["loafers"]}
]`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeWardrobe(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(wardrobeJSON), 0o600))
	return path
}

func TestSuggestCommand(t *testing.T) {
	out, err := execute(t, "suggest", "--items", writeWardrobe(t), "--occasion", "business", "--temp", "62", "--seed", "3")
	require.NoError(t, err)

	var got suggestOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, "business", got.Occasion)
	require.NotNil(t, got.Weather)
	require.Equal(t, 62.0, got.Weather.Temperature)
	require.Len(t, got.Suggestions, 1)

	best := got.Suggestions[0]
	require.Equal(t, []string{"t1", "b1", "s1"}, best.ItemIDs())
	// 3 neutrals, 3/3 style (slacks by name), 3/3 mild seasons.
	require.InDelta(t, 0.3*0.9+0.4*1+0.3*1, best.Score, 1e-9)
	require.Contains(t, best.Reason, "Perfect for business")
	require.Contains(t, best.Reason, "Suitable for 62°F")
}

func TestSuggestCommandWithoutWeather(t *testing.T) {
	out, err := execute(t, "suggest", "--items", writeWardrobe(t), "--occasion", "casual")
	require.NoError(t, err)

	var got suggestOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Nil(t, got.Weather)
	require.Len(t, got.Suggestions, 1)
}

func TestSuggestCommandErrors(t *testing.T) {
	_, err := execute(t, "suggest")
	require.ErrorContains(t, err, "items")

	_, err = execute(t, "suggest", "--items", filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorContains(t, err, "failed to read items file")

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))
	_, err = execute(t, "suggest", "--items", bad)
	require.ErrorContains(t, err, "failed to unmarshal")
}

func TestTokenCommand(t *testing.T) {
	secret := "cli-test-secret-0123456789"
	out, err := execute(t, "token", "--user", "user-42", "--email", "Ada@Example.com", "--secret", secret, "--ttl", "10m")
	require.NoError(t, err)

	token := strings.TrimSpace(out)
	svc := auth.NewService(auth.Config{Secret: secret, Issuer: "closet-stylist", TokenTTL: time.Hour}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, "user-42", claims.UserID)
	require.Equal(t, "ada@example.com", claims.Email)
	require.WithinDuration(t, time.Now().Add(10*time.Minute), claims.ExpiresAt, time.Minute)
}

func TestTokenCommandRequiresUser(t *testing.T) {
	_, err := execute(t, "token", "--secret", "cli-test-secret-0123456789")
	require.ErrorContains(t, err, "user")
}
