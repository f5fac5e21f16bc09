// Package checkenv validates an environment snapshot against declared
// required, optional and unsafe variable names at process start-up.
package checkenv

import "slices"

// Check classifies env against spec. A nil env is replaced by Environ().
//
// Required and optional names are checked first, then unsafe names when the
// production discriminator is active. Both categories are always evaluated.
// Unless spec.NoThrow is set, a *MissingError is returned when any required
// name is unset, otherwise an *UnsafeError when any unsafe name is set.
// The result is returned in every case.
func Check(spec Spec, env Env) (Result, error) {
	res := Result{Required: []string{}, Optional: []string{}, Unsafe: []string{}}
	if spec.IsEmpty() {
		return res, nil
	}
	if env == nil {
		env = Environ()
	}

	logMissing := spec.LogMissing
	if logMissing == nil {
		logMissing = DisplayMissing
	}
	logOptional := spec.LogOptional
	if logOptional == nil {
		logOptional = DisplayOptional
	}
	logUnsafe := spec.LogUnsafe
	if logUnsafe == nil {
		logUnsafe = DisplayUnsafe
	}

	for _, name := range spec.Required.Normalize() {
		if !env.IsSet(name) {
			logMissing(name)
			res.Required = append(res.Required, name)
		}
	}
	for _, name := range spec.Optional.Normalize() {
		if !env.IsSet(name) {
			logOptional(name)
			res.Optional = append(res.Optional, name)
		}
	}
	if spec.Production(env) {
		for _, name := range spec.Unsafe.Normalize() {
			if env.IsSet(name) {
				logUnsafe(name)
				res.Unsafe = append(res.Unsafe, name)
			}
		}
	}

	if spec.NoThrow {
		return res, nil
	}
	if len(res.Required) > 0 {
		return res, &MissingError{Missing: slices.Clone(res.Required), Optional: slices.Clone(res.Optional)}
	}
	if len(res.Unsafe) > 0 {
		return res, &UnsafeError{Unsafe: slices.Clone(res.Unsafe)}
	}
	return res, nil
}

// MustCheck is like Check but panics with the returned error.
func MustCheck(spec Spec, env Env) Result {
	res, err := Check(spec, env)
	if err != nil {
		panic(err)
	}
	return res
}
