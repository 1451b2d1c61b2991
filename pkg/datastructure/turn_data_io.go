package datastructure

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/guidancex/pkg/util"
	"golang.org/x/exp/constraints"
)

func writeFields[T constraints.Integer](w *bufio.Writer, vals ...T) {
	for i, v := range vals {
		if i > 0 {
			fmt.Fprintf(w, " ")
		}
		fmt.Fprintf(w, "%d", v)
	}
	fmt.Fprintf(w, "\n")
}

// WriteTurnData. write classified turns to a bzip2-compressed text
// file. one header line with the record count, then one record per
// line: node viaEdge outEdge turnType directionModifier.
func WriteTurnData(filename string, turns []TurnData) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	defer bz.Close()

	w := bufio.NewWriter(bz)
	defer w.Flush()

	fmt.Fprintf(w, "%d\n", len(turns))
	for _, t := range turns {
		writeFields(w, uint32(t.Node), uint32(t.ViaEdge), uint32(t.OutEdge),
			uint32(t.Instruction.Type), uint32(t.Instruction.Direction))
	}

	return nil
}

func ReadTurnData(filename string) ([]TurnData, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bz, err := bzip2.NewReader(f, &bzip2.ReaderConfig{})
	if err != nil {
		return nil, err
	}
	defer bz.Close()

	r := bufio.NewReader(bz)
	readLine := func() (string, error) {
		line, err := r.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	line, err := readLine()
	if err != nil {
		return nil, err
	}

	var n int
	if _, err := fmt.Sscanf(line, "%d", &n); err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadFormat, "turn data header")
	}

	turns := make([]TurnData, 0, n)
	for i := 0; i < n; i++ {
		line, err = readLine()
		if err != nil {
			return nil, err
		}
		var node, via, out, tt, dm uint32
		if _, err := fmt.Sscanf(line, "%d %d %d %d %d", &node, &via, &out, &tt, &dm); err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadFormat, "turn data record %d", i)
		}
		turns = append(turns, NewTurnData(Index(node), Index(via), Index(out),
			NewTurnInstruction(TurnType(tt), DirectionModifier(dm))))
	}

	return turns, nil
}
