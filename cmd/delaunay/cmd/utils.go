package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/jeertmans/DelaunayTriangulation/internal/genconfig"
)

// confirmIfExists checks that a file exists, and asks the user for
// confirmation before letting a caller overwrite it. It returns true if
// the file doesn't exist, or if the user answered yes.
func confirmIfExists(path, msg string) (ok bool, err error) {
	exists, err := genconfig.Exists(path)
	if err != nil {
		return false, err
	}
	if !exists {
		return true, nil
	}
	return askForConfirmation(msg), nil
}

// askForConfirmation shows msg and reads a y/n answer from stdin
// (ENTER defaults to no).
func askForConfirmation(msg string) bool {
	fmt.Println(msg)
	reader := bufio.NewReader(os.Stdin)
	defaultInput := byte('N')

	for {
		input, _ := reader.ReadString('\n')
		if len(input) == 0 {
			return false
		}
		c := input[0]
		if c == '\n' {
			c = defaultInput
		}
		switch c {
		case 'Y', 'y':
			return true
		case 'N', 'n':
			return false
		}
	}
}
