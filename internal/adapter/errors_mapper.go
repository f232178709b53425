// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/models"
	"github.com/go-resty/resty/v2"
)

var errorsByCode = map[int]error{
	app.CodeParamsError:               ErrParamsInvalid,
	app.CodeAccountOrPasswordNotExist: ErrAccountOrPasswordInvalid,
	app.CodeTokenInvalid:              ErrTokenInvalid,
	app.CodeAccountExists:             ErrAccountExists,
	app.CodeNotLoggedIn:               ErrNotLoggedIn,
}

// decodeResult unpacks the envelope of resp into data (which may be nil) and
// turns a failed envelope or a non-2xx status into an error.
func decodeResult(resp *resty.Response, data any) error {
	var result struct {
		models.Result
		Data json.RawMessage `json:"data"`
	}

	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
			return fmt.Errorf("%w: http %d: %s", ErrServer, resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
		}
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	if !result.Success {
		if err, ok := errorsByCode[result.Code]; ok {
			return err
		}
		return fmt.Errorf("%w: code %d: %s", ErrServer, result.Code, result.Msg)
	}

	if data == nil || len(result.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(result.Data, data); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return nil
}
