package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"massnet.org/sha256/errors"
	"massnet.org/sha256/logging"
	"massnet.org/sha256/sha256"
)

var checkFlagFile bool

var checkCmd = &cobra.Command{
	Use:   "check <digest> <text>",
	Short: "Verify that text, or a file with --file, has the given digest",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		want, err := parseDigest(args[0])
		if err != nil {
			return err
		}

		data := []byte(args[1])
		if checkFlagFile {
			if data, err = readFile(args[1]); err != nil {
				return err
			}
		}

		h, err := startHasher()
		if err != nil {
			return err
		}
		defer h.Stop()

		got, err := h.Sum(data)
		if err != nil {
			return hashError(err)
		}
		if !got.IsEqual(want) {
			logging.CPrint(logging.WARN, "digest mismatch", logging.LogFormat{"want": want, "got": got})
			return errors.New(errors.ErrDigestMismatch, fmt.Errorf("got %s, want %s", got, want))
		}

		fmt.Fprintln(cmd.OutOrStdout(), "OK")
		return nil
	},
}

// parseDigest accepts exactly 64 hex characters.
func parseDigest(s string) (*sha256.Digest, error) {
	if len(s) != sha256.MaxDigestStringSize {
		return nil, errors.New(errors.ErrInvalidDigest, fmt.Errorf("got %d characters", len(s)))
	}
	d, err := sha256.NewDigestFromStr(s)
	if err != nil {
		return nil, errors.New(errors.ErrInvalidDigest, err)
	}
	return d, nil
}
