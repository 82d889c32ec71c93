package iocli

//go:generate moq -out prompter_mock.go . Prompter

// Prompter reads interactive input for CLI commands
type Prompter interface {
	ReadInput(prompt string) (string, error)
	ReadSecret(prompt string) (string, error)
}
