// Package envtest provides fake environments for tests.
package envtest

// Empty is an environment without any variables.
var Empty = Env{}

// Env is a fake environment backed by a map.
type Env map[string]string

// Getenv is an analog for the os.Getenv operation.
// It returns an empty string for unset variables.
func (e Env) Getenv(k string) string {
	return e[k]
}
