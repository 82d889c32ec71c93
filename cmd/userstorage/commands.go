package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/iudanet/userstorage/internal/crypto"
	"github.com/iudanet/userstorage/internal/importer"
	"github.com/iudanet/userstorage/internal/models"
	"github.com/iudanet/userstorage/internal/userstorage"
	"github.com/iudanet/userstorage/internal/validation"
)

// userOutput adds the resolved password to the printed user
type userOutput struct {
	*models.User
	Password *string `json:"password,omitempty"`
}

func newUserCmd(a *app) *cobra.Command {
	var id, loginID string

	cmd := &cobra.Command{
		Use:   "user",
		Short: "Print a user by id or login id",
		Example: `  userstorage user --id someUserId
  userstorage user --login alice --password-policy resolve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withView(cmd.Context(), func(view *userstorage.View) error {
				var (
					user *models.User
					err  error
				)
				if id != "" {
					user, err = view.GetUserByID(cmd.Context(), id)
				} else {
					user, err = view.GetUserByLoginID(cmd.Context(), loginID)
				}
				if err != nil {
					return err
				}

				out := userOutput{User: user}
				if password, ok := user.Password.Get(); ok {
					out.Password = &password
				}
				return printJSON(cmd.OutOrStdout(), out)
			})
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "user record id")
	cmd.Flags().StringVar(&loginID, "login", "", "user login id")
	cmd.MarkFlagsOneRequired("id", "login")
	cmd.MarkFlagsMutuallyExclusive("id", "login")
	return cmd
}

func newAppTokenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "apptoken ID",
		Short: "Print an app token by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withView(cmd.Context(), func(view *userstorage.View) error {
				token, err := view.GetAppTokenByID(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), token)
			})
		},
	}
}

func newSecretCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "secret ID",
		Short: "Print the value of a system secret by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withView(cmd.Context(), func(view *userstorage.View) error {
				secret, err := view.GetSystemSecretByID(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), secret)
				return err
			})
		},
	}
}

func newImportCmd(a *app) *cobra.Command {
	var (
		hashSecrets bool
		cost        int
	)

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Load records from a JSON array file",
		Long: `Load records from a JSON array file into the configured backend.

Records without an id get a generated UUID. Existing records with the same
type and id are replaced. With --hash-secrets, plaintext systemSecret values
are stored as bcrypt hashes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.openBackend(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to open storage: %w", err)
			}
			defer func() {
				if err := b.Close(); err != nil {
					a.logger.Error("failed to close storage", "error", err)
				}
			}()

			opts := []importer.Option{importer.WithLogger(a.logger)}
			if hashSecrets {
				opts = append(opts, importer.WithSecretHashing(cost))
			}

			result, err := importer.New(b, opts...).ImportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d records (%d generated ids, %d hashed secrets)\n",
				result.Imported, result.GeneratedIDs, result.HashedSecrets)
			return err
		},
	}

	cmd.Flags().BoolVar(&hashSecrets, "hash-secrets", false, "store plaintext system secrets as bcrypt hashes")
	cmd.Flags().IntVar(&cost, "cost", crypto.DefaultCost, "bcrypt cost for --hash-secrets")
	return cmd
}

func newHashCmd(a *app) *cobra.Command {
	var cost int

	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Print the bcrypt hash of a secret read from the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := a.prompter.ReadSecret("Secret: ")
			if err != nil {
				return fmt.Errorf("failed to read secret: %w", err)
			}
			if err := validation.ValidateSecret(secret); err != nil {
				return err
			}

			hashed, err := crypto.HashSecret([]byte(secret), cost)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hashed)
			return err
		},
	}

	cmd.Flags().IntVar(&cost, "cost", crypto.DefaultCost, "bcrypt cost")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		// конфигурация для версии не нужна
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(cmd.OutOrStdout())
		},
	}
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "userstorage\n")
	fmt.Fprintf(w, "Version:    %s\n", Version)
	fmt.Fprintf(w, "Build Date: %s\n", BuildDate)
	fmt.Fprintf(w, "Git Commit: %s\n", GitCommit)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

// exitMessage returns the text printed for a failed command
func exitMessage(err error) string {
	var viewErr *userstorage.StorageViewError
	if errors.As(err, &viewErr) && viewErr.Err != nil {
		return fmt.Sprintf("%s: %v", viewErr.Message, viewErr.Err)
	}
	return err.Error()
}
