package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/linefit/dataset"
	"github.com/arloliu/linefit/format"
	"github.com/arloliu/linefit/internal/logger"
)

var (
	encodeIn          string
	encodeOut         string
	encodeCompression string
	encodeBigEndian   bool
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Write a YAML point list as a binary dataset blob",
	Long: `Convert a YAML point list into a compact binary dataset blob that
"linefit fit --data" can read back.

Examples:
  linefit encode --in points.yaml --out points.lfd
  linefit encode --in points.yaml --out points.lfd --compression lz4`,
	Args: cobra.NoArgs,
	RunE: runEncode,
}

func init() {
	encodeCmd.Flags().StringVar(&encodeIn, "in", "",
		"YAML point list to read")
	encodeCmd.Flags().StringVar(&encodeOut, "out", "",
		"Blob file to write")
	encodeCmd.Flags().StringVar(&encodeCompression, "compression", "",
		"Payload compression: none, zstd, s2, lz4 (default from config)")
	encodeCmd.Flags().BoolVar(&encodeBigEndian, "big-endian", false,
		"Write the blob in big-endian byte order")
	_ = encodeCmd.MarkFlagRequired("in")
	_ = encodeCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	compression := cfg.CompressionType()
	if encodeCompression != "" {
		compression, err = format.ParseCompressionType(encodeCompression)
		if err != nil {
			return err
		}
	}

	data, err := os.ReadFile(encodeIn)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", encodeIn, err)
	}
	points, err := dataset.ParseYAML(data)
	if err != nil {
		return err
	}

	opts := []dataset.EncodeOption{dataset.WithCompression(compression)}
	if encodeBigEndian {
		opts = append(opts, dataset.WithBigEndian())
	}

	blob, err := dataset.Encode(points, opts...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(encodeOut, blob, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", encodeOut, err)
	}

	logger.Info("dataset encoded",
		"points", len(points),
		"compression", compression.String(),
		"bytes", len(blob),
		"fingerprint", fmt.Sprintf("%016x", dataset.Fingerprint(points)),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d points to %s (%d bytes, %s)\n",
		len(points), encodeOut, len(blob), compression)

	return nil
}
