package cmd

import (
	"context"
	"encoding/hex"
	"fmt"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"
	"massnet.org/sha256/errors"
	"massnet.org/sha256/logging"
	"massnet.org/sha256/massutil"
	"massnet.org/sha256/sha256"
)

const (
	algoSha256  = "sha256"
	algoHash256 = "hash256"
	algoHash160 = "hash160"
)

// derivedAlgos are the digests built on SHA-256 that sum can print instead.
var derivedAlgos = map[string]func([]byte) []byte{
	algoHash256: massutil.Hash256,
	algoHash160: massutil.Hash160,
}

var (
	sumFlagFile  bool
	sumFlagWhole bool
	sumFlagQuiet bool
	sumFlagAlgo  string
)

var sumCmd = &cobra.Command{
	Use:   "sum [text ...]",
	Short: "Print the SHA-256 digest of each argument, file or stdin line",
	Long: `Print the SHA-256 digest of each argument.

With --file the arguments are file paths, "-" reads stdin. Without
arguments stdin is hashed line by line, or whole with --whole. On an
interactive terminal a single word is read from the prompt.

--algo hash256 prints sha256(sha256(m)) and --algo hash160 prints
ripemd160(sha256(m)).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		derive, ok := derivedAlgos[sumFlagAlgo]
		if !ok && sumFlagAlgo != algoSha256 {
			return errors.New(errors.ErrInvalidParameter, fmt.Errorf("unknown algo %q", sumFlagAlgo))
		}

		if len(args) == 0 && !sumFlagFile && !sumFlagWhole && derive == nil && stdinIsTerminal() {
			return sumWord(cmd)
		}

		msgs, err := collectMessages(cmd, args)
		if err != nil {
			return err
		}

		var hexDigests []string
		if derive != nil {
			hexDigests = make([]string, len(msgs))
			for i := range msgs {
				hexDigests[i] = hex.EncodeToString(derive(msgs[i].data))
			}
		} else {
			digests, err := sumMessages(msgs)
			if err != nil {
				return err
			}
			hexDigests = make([]string, len(digests))
			for i := range digests {
				hexDigests[i] = digests[i].String()
			}
		}

		out := cmd.OutOrStdout()
		for i, d := range hexDigests {
			if sumFlagQuiet {
				fmt.Fprintln(out, d)
			} else {
				fmt.Fprintf(out, "%s  %s\n", d, msgs[i].label)
			}
		}
		return nil
	},
}

func sumWord(cmd *cobra.Command) error {
	word, err := readWord(cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	d, err := sha256.SumString(word)
	if err != nil {
		return hashError(err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "SHA-256 hash of \"%s\": %s\n", word, d)
	return nil
}

func collectMessages(cmd *cobra.Command, args []string) ([]message, error) {
	in := cmd.InOrStdin()

	switch {
	case sumFlagFile:
		if len(args) == 0 {
			args = []string{"-"}
		}
		msgs := make([]message, 0, len(args))
		for _, path := range args {
			var (
				data []byte
				err  error
			)
			if path == "-" {
				data, err = readAll(in)
			} else {
				data, err = readFile(path)
			}
			if err != nil {
				return nil, err
			}
			msgs = append(msgs, message{label: path, data: data})
		}
		return msgs, nil

	case len(args) > 0:
		msgs := make([]message, len(args))
		for i, arg := range args {
			msgs[i] = message{label: arg, data: []byte(arg)}
		}
		return msgs, nil

	case sumFlagWhole:
		data, err := readAll(in)
		if err != nil {
			return nil, err
		}
		return []message{{label: "-", data: data}}, nil

	default:
		msgs, err := readLines(in)
		if err != nil {
			return nil, err
		}
		if len(msgs) == 0 {
			return nil, errors.New(errors.ErrNoInput, nil)
		}
		return msgs, nil
	}
}

func sumMessages(msgs []message) ([]sha256.Digest, error) {
	h, err := startHasher()
	if err != nil {
		return nil, err
	}
	defer h.Stop()

	data := make([][]byte, len(msgs))
	for i := range msgs {
		data[i] = msgs[i].data
	}
	digests, err := h.SumBatch(context.Background(), data)
	if err != nil {
		return nil, hashError(err)
	}
	logging.CPrint(logging.INFO, "hashed messages", logging.LogFormat{"count": len(digests)})
	return digests, nil
}

func hashError(err error) error {
	if pkgerrors.Cause(err) == sha256.ErrLengthOverflow {
		return errors.New(errors.ErrLengthOverflow, err)
	}
	return errors.New(errors.ErrUnknownErr, err)
}
