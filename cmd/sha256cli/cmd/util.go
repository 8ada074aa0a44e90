package cmd

import (
	"bufio"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/shirou/gopsutil/mem"
	"golang.org/x/crypto/ssh/terminal"
	"massnet.org/sha256/config"
	"massnet.org/sha256/errors"
	"massnet.org/sha256/hasher"
	"massnet.org/sha256/logging"
)

// maxLineSize bounds one stdin line hashed in line mode.
const maxLineSize = 64 << 20

// message is one labelled input to hash.
type message struct {
	label string
	data  []byte
}

var (
	availableMemory = func() (uint64, error) {
		vm, err := mem.VirtualMemory()
		if err != nil {
			return 0, err
		}
		return vm.Available, nil
	}

	stdinIsTerminal = func() bool {
		return terminal.IsTerminal(int(os.Stdin.Fd()))
	}
)

// checkFits rejects inputs that cannot be held in memory twice over: the
// padded buffer is a full copy of the message.
func checkFits(label string, size int64) error {
	avail, err := availableMemory()
	if err != nil {
		logging.CPrint(logging.WARN, "fail to read available memory", logging.LogFormat{"err": err})
		return nil
	}
	if size < 0 || uint64(size) > avail/2 {
		return errors.New(errors.ErrInputTooLarge, fmt.Errorf("%s is %d bytes, %d bytes available", label, size, avail))
	}
	return nil
}

func readFile(path string) ([]byte, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, errors.New(errors.ErrReadInput, err)
	}
	if fi.IsDir() {
		return nil, errors.New(errors.ErrReadInput, fmt.Errorf("%s is a directory", path))
	}
	if err = checkFits(path, fi.Size()); err != nil {
		return nil, err
	}
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.New(errors.ErrReadInput, err)
	}
	logging.CPrint(logging.DEBUG, "read file", logging.LogFormat{"path": path, "size": len(data)})
	return data, nil
}

func readAll(r io.Reader) ([]byte, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.New(errors.ErrReadInput, err)
	}
	return data, nil
}

// readLines returns each line of r without its line terminator.
func readLines(r io.Reader) ([]message, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var msgs []message
	for scanner.Scan() {
		line := append([]byte(nil), scanner.Bytes()...)
		msgs = append(msgs, message{label: string(line), data: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.New(errors.ErrReadInput, err)
	}
	return msgs, nil
}

// readWord prompts on out and reads one whitespace delimited word from in.
func readWord(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Enter text: ")
	var word string
	if _, err := fmt.Fscan(in, &word); err != nil {
		if err == io.EOF {
			return "", errors.New(errors.ErrNoInput, nil)
		}
		return "", errors.New(errors.ErrReadInput, err)
	}
	return word, nil
}

// startHasher validates the loaded configuration and starts a batch hasher.
func startHasher() (*hasher.Hasher, error) {
	if err := config.CheckConfig(cliConfig); err != nil {
		return nil, errors.New(errors.ErrInvalidConfig, err)
	}
	h, err := hasher.New(cliConfig.Hasher)
	if err != nil {
		return nil, errors.New(errors.ErrInvalidConfig, err)
	}
	if err = h.Start(); err != nil {
		return nil, errors.New(errors.ErrUnknownErr, err)
	}
	return h, nil
}
