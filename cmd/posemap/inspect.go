package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/swdee/go-posemap/postprocess"
	"github.com/swdee/go-posemap/store"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print the contents of a keypoint archive (.npz) or heatmap bundle (.h5)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return inspect(cmd.OutOrStdout(), args[0])
		},
	}
}

// inspect prints a summary of a result file
func inspect(w io.Writer, path string) error {

	switch strings.ToLower(filepath.Ext(path)) {
	case ".npz":
		pose, err := store.ReadKeypoints(path)

		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%s: %s [2 x %d]\n", path, store.PoseKey, pose.NumJoints())

		for j := 0; j < pose.NumJoints(); j++ {
			x, y := pose.Joint(j)
			name := "joint"

			if j < len(postprocess.NativeJointNames) {
				name = postprocess.NativeJointNames[j]
			}

			fmt.Fprintf(w, "  %2d %-15s x=%8.2f y=%8.2f\n", j, name, x, y)
		}

	case ".h5":
		sb, err := store.ReadBundle(path)

		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%s: %s %v, %s %v\n", path, store.HeatmapKey, sb.HeatmapDims,
			store.ImageKey, sb.ImageDims)

		if len(sb.HeatmapDims) == 3 {
			plane := int(sb.HeatmapDims[1] * sb.HeatmapDims[2])

			for c := 0; c < int(sb.HeatmapDims[0]); c++ {
				peak := float32(0)

				for _, v := range sb.Heatmap[c*plane : (c+1)*plane] {
					if v > peak {
						peak = v
					}
				}

				name := "joint"

				if c < len(postprocess.CanonicalJointNames) {
					name = postprocess.CanonicalJointNames[c]
				}

				fmt.Fprintf(w, "  %2d %-15s peak=%.4f\n", c, name, peak)
			}
		}

	default:
		return fmt.Errorf("unknown result file type %s", path)
	}

	return nil
}
