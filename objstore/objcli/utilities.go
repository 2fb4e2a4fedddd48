package objcli

import (
	"fmt"
	"io"
)

// SeekerLength returns the length of the provided seeker whilst leaving the offset of the seeker in the same place as
// when provided.
func SeekerLength(seeker io.ReadSeeker) (int64, error) {
	offset, err := seeker.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, fmt.Errorf("failed to get current offset: %w", err)
	}

	length, err := seeker.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, fmt.Errorf("failed to seek to end of seeker: %w", err)
	}

	_, err = seeker.Seek(offset, io.SeekStart)
	if err != nil {
		return 0, fmt.Errorf("failed to seek to original offset: %w", err)
	}

	return length - offset, nil
}
