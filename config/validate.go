// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/ChainSafe/gossamer-babe/internal/log"
)

var (
	errThresholdDenominator   = errors.New("threshold denominator cannot be zero")
	errThresholdRatioAboveOne = errors.New("threshold numerator cannot exceed denominator")
	errThresholdConflict      = errors.New("threshold and threshold ratio cannot both be set")
	errAuthorityWithoutKey    = errors.New("authority requires a key")
	errSealSelfCheckUnknown   = errors.New("seal self check policy is unknown")
	errMetricsAddressEmpty    = errors.New("metrics address cannot be empty when publishing")
	errHexInvalid             = errors.New("value is not hexadecimal")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	err := v.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, err := log.ParseLevel(fl.Field().String())
		return err == nil
	})
	if err != nil {
		panic(err)
	}
	return v
}

// validateStruct validates the struct tags of s and converts the first
// failing field into its package error.
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return err
	}

	fieldErr := fieldErrors[0]
	if fieldErr.Tag() == "loglevel" {
		return fmt.Errorf("%s: %w: %v", fieldErr.Namespace(), log.ErrLevelNotRecognised, fieldErr.Value())
	}

	switch fieldErr.StructField() {
	case "Key":
		return errAuthorityWithoutKey
	case "ThresholdDenominator":
		return errThresholdDenominator
	case "ThresholdNumerator":
		return fmt.Errorf("%w: numerator %v", errThresholdRatioAboveOne, fieldErr.Value())
	case "Threshold":
		return errThresholdConflict
	case "SealSelfCheck":
		return fmt.Errorf("%w: %v", errSealSelfCheckUnknown, fieldErr.Value())
	case "Randomness", "GenesisHash":
		return fmt.Errorf("%s: %w: %v", fieldErr.Namespace(), errHexInvalid, fieldErr.Value())
	case "Address":
		return errMetricsAddressEmpty
	default:
		return fieldErr
	}
}
