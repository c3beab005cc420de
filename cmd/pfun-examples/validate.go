// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"code.hybscloud.com/pfun/internal/account"
	"code.hybscloud.com/pfun/internal/config"
	"github.com/rs/zerolog"
)

func runValidate(w io.Writer, log zerolog.Logger, cfg *config.Config) error {
	valid := 0
	for _, a := range cfg.Accounts {
		v := account.Register(a.Username, a.Password)
		if u, ok := v.Get(); ok {
			valid++
			user := u.(account.User)
			fmt.Fprintf(w, "ok %s %s\n", user.Username, user.PasswordHash[:16])
			continue
		}
		msgs := account.Messages(v)
		log.Warn().Str("username", a.Username).Strs("errors", msgs).Msg("invalid account")
		fmt.Fprintf(w, "invalid %q: %s\n", a.Username, strings.Join(msgs, "; "))
	}
	log.Info().Int("accounts", len(cfg.Accounts)).Int("valid", valid).Msg("validate")
	return nil
}
