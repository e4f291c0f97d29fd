// Package testutil provides testing utilities for the azkar backend.
package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"time"
)

// Fake provides generators for fake test data.
var Fake = &fakeGenerator{}

type fakeGenerator struct {
	counter int64
}

// String generates a random string with the given prefix.
func (f *fakeGenerator) String(prefix string) string {
	f.counter++
	return fmt.Sprintf("%s_%d_%s", prefix, f.counter, f.randomHex(4))
}

// Email generates a fake email address.
func (f *fakeGenerator) Email() string {
	f.counter++
	return fmt.Sprintf("user%d_%s@example.com", f.counter, f.randomHex(4))
}

// Name generates a fake name.
func (f *fakeGenerator) Name() string {
	firstNames := []string{"Ahmad", "Fatima", "Omar", "Aisha", "Yusuf", "Mariam", "Khalid", "Layla"}
	lastNames := []string{"Hassan", "Ali", "Ibrahim", "Mahmoud", "Saleh", "Khan", "Farouk", "Amin"}
	return fmt.Sprintf("%s %s", f.randomChoice(firstNames), f.randomChoice(lastNames))
}

// Username generates a fake username.
func (f *fakeGenerator) Username() string {
	f.counter++
	return fmt.Sprintf("user%d_%s", f.counter, f.randomHex(4))
}

// FacebookUserID generates a fake numeric Facebook user id.
func (f *fakeGenerator) FacebookUserID() string {
	n, _ := rand.Int(rand.Reader, big.NewInt(1_000_000_000_000))
	return fmt.Sprintf("10%012d", n.Int64())
}

// AccessToken generates a fake opaque access token.
func (f *fakeGenerator) AccessToken() string {
	return "EAAB" + f.randomHex(24)
}

// Zekr generates a fake zekr text.
func (f *fakeGenerator) Zekr() string {
	zekrs := []string{
		"Subhan Allah",
		"Alhamdulillah",
		"Allahu Akbar",
		"La ilaha illa Allah",
		"Astaghfirullah",
	}
	return f.randomChoice(zekrs)
}

// Hex generates a random hex string of the given byte length.
func (f *fakeGenerator) Hex(byteLength int) string {
	return f.randomHex(byteLength)
}

// ID generates a fake ULID-like string.
func (f *fakeGenerator) ID() string {
	return strings.ToUpper(f.randomHex(13))
}

// Duration generates a random duration between min and max.
func (f *fakeGenerator) Duration(min, max time.Duration) time.Duration {
	minNanos := min.Nanoseconds()
	maxNanos := max.Nanoseconds()
	deltaNanos := f.randomInt64(0, maxNanos-minNanos)
	return time.Duration(minNanos + deltaNanos)
}

// FutureTime generates a time in the future.
func (f *fakeGenerator) FutureTime(maxOffset time.Duration) time.Time {
	offset := f.Duration(time.Minute, maxOffset)
	return time.Now().Add(offset)
}

// PastTime generates a time in the past.
func (f *fakeGenerator) PastTime(maxOffset time.Duration) time.Time {
	offset := f.Duration(time.Minute, maxOffset)
	return time.Now().Add(-offset)
}

// Helpers

func (f *fakeGenerator) randomHex(byteLength int) string {
	bytes := make([]byte, byteLength)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

func (f *fakeGenerator) randomChoice(choices []string) string {
	idx := f.randomInt(0, len(choices))
	return choices[idx]
}

func (f *fakeGenerator) randomInt(min, max int) int {
	if max <= min {
		return min
	}
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(max-min)))
	return min + int(n.Int64())
}

func (f *fakeGenerator) randomInt64(min, max int64) int64 {
	if max <= min {
		return min
	}
	n, _ := rand.Int(rand.Reader, big.NewInt(max-min))
	return min + n.Int64()
}
