package store

import (
	"os"
	"path/filepath"

	"github.com/sbinet/npyio/npz"
	"github.com/swdee/go-posemap"
	"gonum.org/v1/gonum/mat"
)

// WriteKeypoints saves the pose as the "pose" array of a numpy .npz archive.
// The archive is written to a temporary file in the destination directory
// and renamed into place so readers never see a partial file.
func WriteKeypoints(path string, pose *posemap.Pose) error {

	dir, base := filepath.Split(path)

	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".tmp*")

	if err != nil {
		return wrapErr(path, "create", err)
	}

	// remove the temp file on any failure, a no-op after the rename
	defer os.Remove(tmp.Name())

	zw := npz.NewWriter(tmp)

	if err := zw.Write(PoseKey, pose.Dense()); err != nil {
		tmp.Close()
		return wrapErr(path, "write", err)
	}

	if err := zw.Close(); err != nil {
		tmp.Close()
		return wrapErr(path, "write", err)
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return wrapErr(path, "sync", err)
	}

	if err := tmp.Close(); err != nil {
		return wrapErr(path, "close", err)
	}

	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return wrapErr(path, "chmod", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return wrapErr(path, "rename", err)
	}

	return nil
}

// ReadKeypoints loads the "pose" array of a keypoint archive
func ReadKeypoints(path string) (*posemap.Pose, error) {

	zr, err := npz.Open(path)

	if err != nil {
		return nil, wrapErr(path, "open", err)
	}

	defer zr.Close()

	var m mat.Dense

	if err := zr.Read(PoseKey, &m); err != nil {
		return nil, wrapErr(path, "read", err)
	}

	pose, err := posemap.NewPoseFromDense(&m)

	if err != nil {
		return nil, wrapErr(path, "decode", err)
	}

	return pose, nil
}
