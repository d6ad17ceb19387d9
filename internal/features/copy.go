package features

import (
	"context"
	stdErrors "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"git.home.luguber.info/inful/docfeatures/internal/errors"
	"git.home.luguber.info/inful/docfeatures/internal/logfields"
	"git.home.luguber.info/inful/docfeatures/internal/metrics"
)

// ErrSameFile is returned when a destination path resolves to its own source.
var ErrSameFile = stdErrors.New("source and destination are the same file")

// Copy copies every *.json file directly inside <docs_dir>/features into
// <site_dir>/features, creating the destination if needed.
//
// File system failures are returned as filesystem-category errors with the
// original cause preserved; files copied before the failure stay in place.
func Copy(ctx context.Context, paths Paths, opts ...Option) (*Result, error) {
	o := newOptions(opts)
	start := time.Now()

	res, err := copyFeatures(ctx, paths, o)
	res.Duration = time.Since(start)

	o.recorder.ObserveCopyDuration(res.Duration)
	switch {
	case err != nil:
		o.recorder.IncCopyOutcome(metrics.OutcomeFailed)
	case res.SourceMissing:
		o.recorder.IncCopyOutcome(metrics.OutcomeSkipped)
	default:
		o.recorder.IncCopyOutcome(metrics.OutcomeCopied)
	}
	if !res.DryRun {
		o.recorder.IncFilesCopied(res.Count())
		o.recorder.AddBytesCopied(res.Bytes())
	}

	if err != nil {
		return res, err
	}
	o.logger.Debug("Feature copy finished",
		logfields.Source(res.Source),
		logfields.Dest(res.Dest),
		logfields.Count(res.Count()),
		logfields.Bytes(res.Bytes()),
		logfields.Duration(res.Duration))
	return res, nil
}

func copyFeatures(ctx context.Context, paths Paths, o *options) (*Result, error) {
	res := &Result{Source: paths.Source(), Dest: paths.Dest(), DryRun: o.dryRun}

	isDir, err := sourceIsDir(res.Source)
	if err != nil {
		return res, errors.FileSystemError("stat source", res.Source, err)
	}
	if !isDir {
		res.SourceMissing = true
		o.logger.Debug("No feature directory, nothing to copy", logfields.Source(res.Source))
		return res, nil
	}

	if !o.dryRun {
		if err := os.MkdirAll(res.Dest, 0o755); err != nil {
			return res, errors.FileSystemError("create destination", res.Dest, err)
		}
	}

	entries, err := os.ReadDir(res.Source)
	if err != nil {
		return res, errors.FileSystemError("read source", res.Source, err)
	}

	for _, entry := range entries {
		if !IsFeatureFile(entry.Name()) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return res, errors.Canceled(err)
		}

		src := filepath.Join(res.Source, entry.Name())
		info, err := os.Stat(src) // follows symlinks
		if err != nil {
			return res, errors.FileSystemError("stat file", src, err)
		}
		if !info.Mode().IsRegular() {
			continue
		}

		dst := filepath.Join(res.Dest, entry.Name())
		size := info.Size()
		if !o.dryRun {
			n, err := copyFile(src, dst, info)
			if err != nil {
				return res, errors.FileSystemError("copy file", src, err).WithContext("dest", dst)
			}
			size = n
			o.logger.Info("Copied "+entry.Name()+" to site/features/",
				logfields.File(entry.Name()),
				logfields.Dest(dst))
		} else {
			o.logger.Info("Would copy "+entry.Name()+" to site/features/",
				logfields.File(entry.Name()),
				logfields.Dest(dst))
		}

		res.Files = append(res.Files, CopiedFile{
			Name:    entry.Name(),
			Source:  src,
			Dest:    dst,
			Size:    size,
			ModTime: info.ModTime(),
		})
	}

	return res, nil
}

// sourceIsDir reports whether path exists and is a directory. A missing path,
// or a path whose parent is not a directory, is reported as false with no error.
func sourceIsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if stdErrors.Is(err, fs.ErrNotExist) || stdErrors.Is(err, syscall.ENOTDIR) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

// copyFile copies contents, permission bits and modification time from src to
// dst and returns the number of bytes written.
func copyFile(src, dst string, info fs.FileInfo) (int64, error) {
	// Opening dst truncates it, which would empty src if both are one file.
	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(info, dstInfo) {
		return 0, ErrSameFile
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = srcFile.Close()
	}()

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(dstFile, srcFile)
	if err != nil {
		_ = dstFile.Close()
		return n, err
	}
	if err := dstFile.Close(); err != nil {
		return n, err
	}

	// OpenFile only applies the mode on creation and is subject to umask.
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return n, err
	}
	// Zero atime leaves the access time untouched.
	return n, os.Chtimes(dst, time.Time{}, info.ModTime())
}
