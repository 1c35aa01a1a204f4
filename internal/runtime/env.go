package runtime

type Env string

const (
	Development Env = "dev"
	Test        Env = "test"
	Production  Env = "prod"
)

// Valid reports whether e is one of the known environments.
func (e Env) Valid() bool {
	switch e {
	case Development, Test, Production:
		return true
	}
	return false
}
