package salience

import (
	"errors"
	"fmt"
)

// Default window geometry for long queries.
const (
	DefaultBlockSize = 50
	DefaultOverlap   = 5
)

// ErrInvalidBlockConfig is returned when the window geometry cannot advance.
var ErrInvalidBlockConfig = errors.New("invalid block configuration")

// ValidateBlockConfig rejects geometries that would not advance the window.
func ValidateBlockConfig(blockSize, overlap int) error {
	if blockSize <= 0 {
		return fmt.Errorf("%w: block size %d must be positive", ErrInvalidBlockConfig, blockSize)
	}

	if overlap < 0 || overlap >= blockSize {
		return fmt.Errorf("%w: overlap %d must be in [0, %d)", ErrInvalidBlockConfig, overlap, blockSize)
	}

	return nil
}

// SplitIntoBlocks cuts lines into windows of blockSize lines whose starts
// advance by blockSize-overlap. The last window may be shorter. Splitting
// stops at the first window that reaches the end of lines, so no trailing
// window lies entirely inside the previous window's overlap.
func SplitIntoBlocks(lines []string, blockSize, overlap int) ([][]string, error) {
	if err := ValidateBlockConfig(blockSize, overlap); err != nil {
		return nil, err
	}

	blocks := make([][]string, 0, WindowCount(len(lines), blockSize, overlap))

	for start := 0; start < len(lines); start += blockSize - overlap {
		end := min(start+blockSize, len(lines))
		blocks = append(blocks, lines[start:end])

		if end == len(lines) {
			break
		}
	}

	return blocks, nil
}

// WindowCount returns how many windows SplitIntoBlocks produces for total
// lines. The geometry must be valid.
func WindowCount(total, blockSize, overlap int) int {
	if total <= 0 || blockSize <= overlap {
		return 0
	}

	if total <= blockSize {
		return 1
	}

	step := blockSize - overlap

	return (total-blockSize+step-1)/step + 1
}
