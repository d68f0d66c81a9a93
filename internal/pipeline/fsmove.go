package pipeline

import (
	"fmt"
	"io"
	"os"
)

// moveFile renames src to dst, falling back to a copy-then-remove when the
// rename fails (e.g. src and dst live on different filesystems, common when
// --scratch-path points outside the output's volume).
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("move %s -> %s: %w", src, dst, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("move %s -> %s: %w", src, dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("move %s -> %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("move %s -> %s: %w", src, dst, err)
	}
	return os.Remove(src)
}
