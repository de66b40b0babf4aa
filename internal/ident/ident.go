// Package ident derives short, stable identifiers from semantic keys.
//
// Records produced by the extractor are keyed by these identifiers, so the
// encoding must be pure: the same key always yields the same id, within a run
// and across runs. Reprocessing a repository is therefore idempotent at the
// record level.
package ident

import (
	"crypto/sha256"
	"math/big"
	"strings"
)

// SourceTypeGit is the source type component of sensor keys produced by this
// module.
const SourceTypeGit = "git"

const base62Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Encode maps an arbitrary string to a short base62 identifier.
// The input is hashed, so ids leak nothing about the key.
func Encode(s string) string {
	sum := sha256.Sum256([]byte(s))
	return base62(sum[:16])
}

func base62(b []byte) string {
	n := new(big.Int).SetBytes(b)
	base := big.NewInt(int64(len(base62Alphabet)))
	rem := new(big.Int)

	var sb strings.Builder
	for n.Sign() > 0 {
		n.DivMod(n, base, rem)
		sb.WriteByte(base62Alphabet[rem.Int64()])
	}
	if sb.Len() == 0 {
		return string(base62Alphabet[0])
	}

	// Digits come out least significant first.
	out := []byte(sb.String())
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

func key(parts ...string) string {
	return strings.Join(parts, "/")
}

// Sensor returns the identifier for a customer's ingestion source.
func Sensor(customerID, sourceType, sourceID string) string {
	return Encode(key("sensor", customerID, sourceType, sourceID))
}

// GitRepo returns the identifier for a repository within a source.
func GitRepo(customerID, sourceID, repoName string) string {
	return Encode(key("git-repo", customerID, sourceID, repoName))
}

// GitCommit returns the identifier for a commit.
func GitCommit(hexsha string) string {
	return Encode(key("git-commit", hexsha))
}

// GitCommitDiff returns the identifier for one file change within a commit.
// The raw stats path is part of the key so two changes in the same commit
// never collide.
func GitCommitDiff(hexsha, rawPath string) string {
	return Encode(key("git-commit-diff", hexsha, rawPath))
}

// GitPath returns the content-addressed identifier for a path within a
// repository.
func GitPath(repoID, path string) string {
	return Encode(key("git-path", repoID, path))
}
