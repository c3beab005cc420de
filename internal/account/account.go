// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package account validates sign-up credentials with [pfun.Validation],
// reporting every failed check at once.
package account

import (
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"

	"code.hybscloud.com/pfun"
	"golang.org/x/crypto/sha3"
)

// Length bounds shared by usernames and passwords.
const (
	MinLen = 5
	MaxLen = 50
)

// User is a validated account. The password is stored hashed.
type User struct {
	Username     string
	PasswordHash string
}

// NotEmpty fails when s is empty.
func NotEmpty(prop, s string) pfun.Validation {
	if s == "" {
		return pfun.Failure(prop + " is empty")
	}
	return pfun.Success(s)
}

// MinLength fails when s has fewer than n characters.
func MinLength(prop, s string, n int) pfun.Validation {
	if utf8.RuneCountInString(s) < n {
		return pfun.Failure(fmt.Sprintf("%s is shorter than %d characters", prop, n))
	}
	return pfun.Success(s)
}

// MaxLength fails when s has more than n characters.
func MaxLength(prop, s string, n int) pfun.Validation {
	if utf8.RuneCountInString(s) > n {
		return pfun.Failure(fmt.Sprintf("%s is longer than %d characters", prop, n))
	}
	return pfun.Success(s)
}

// ContainsNumber fails when s has no ASCII digit.
func ContainsNumber(prop, s string) pfun.Validation {
	if !strings.ContainsAny(s, "0123456789") {
		return pfun.Failure(prop + " should contain at least one number")
	}
	return pfun.Success(s)
}

// ContainsCapital fails when s has no ASCII capital letter.
func ContainsCapital(prop, s string) pfun.Validation {
	if !strings.ContainsFunc(s, func(r rune) bool { return 'A' <= r && r <= 'Z' }) {
		return pfun.Failure(prop + " should contain at least one capital letter")
	}
	return pfun.Success(s)
}

// ValidUsername runs every username check and keeps the username on success.
func ValidUsername(username string) pfun.Validation {
	const prop = "Username"
	return pfun.ValidationOf(username).
		Seql(NotEmpty(prop, username)).
		Seql(MinLength(prop, username, MinLen)).
		Seql(MaxLength(prop, username, MaxLen))
}

// ValidPassword runs every password check and keeps the password on success.
func ValidPassword(password string) pfun.Validation {
	const prop = "Password"
	return pfun.ValidationOf(password).
		Seql(NotEmpty(prop, password)).
		Seql(MinLength(prop, password, MinLen)).
		Seql(MaxLength(prop, password, MaxLen)).
		Seql(ContainsCapital(prop, password)).
		Seql(ContainsNumber(prop, password))
}

// HashPassword returns the hex-encoded SHA3-256 digest of password.
func HashPassword(password string) string {
	sum := sha3.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func hashErased(p pfun.Erased) pfun.Erased {
	return HashPassword(p.(string))
}

// Register validates both credentials in applicative style and builds a
// [User]. Username errors come before password errors.
func Register(username, password string) pfun.Validation {
	return pfun.ValidationOf(pfun.Construct[User]()).
		Ap(ValidUsername(username)).
		Ap(ValidPassword(password).Map(hashErased))
}

// RegisterLifted is [Register] written with [pfun.LiftA2].
func RegisterLifted(username, password string) pfun.Validation {
	return pfun.LiftA2(pfun.Construct[User](),
		ValidUsername(username),
		ValidPassword(password).Map(hashErased))
}

// Messages returns the failure messages of v as strings, or nil on success.
func Messages(v pfun.Validation) []string {
	errs := v.Errors()
	if errs == nil {
		return nil
	}
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = fmt.Sprint(e)
	}
	return out
}
