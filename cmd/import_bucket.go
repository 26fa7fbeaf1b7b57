package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"studio-portfolio/pkg/config"
	"studio-portfolio/pkg/logging"
	"studio-portfolio/pkg/services"
)

// newImportBucketCmd creates a new command for building a gallery document from a bucket
func newImportBucketCmd() *cobra.Command {
	var (
		outputFile   string
		uploadObject string
	)

	cmd := &cobra.Command{
		Use:   "import-bucket",
		Short: "Build a gallery document from the media in a bucket",
		Long: `Scan a Google Cloud Storage bucket laid out as <category>/<file> or
<category>/<sub-category>/<file> and write a gallery document for it. Images that
share a name with a video become that video's poster.`,
		Run: func(cmd *cobra.Command, args []string) {
			// Importing only needs BUCKET_NAME, not GALLERY_SOURCE or SECRET_KEY
			if bucketName != "" {
				os.Setenv("BUCKET_NAME", bucketName)
			}
			bucket := os.Getenv("BUCKET_NAME")
			if bucket == "" {
				logging.Logger.Fatal("Failed to load configuration", "err", config.ErrBucketNameNotSet)
			}

			svc := services.NewService(&config.Config{BucketName: bucket, AssetsBase: "/gallery-assets/"})
			doc, err := svc.ScanBucket(cmd.Context(), bucket)
			if err != nil {
				logging.Logger.Fatal("Failed to scan bucket", "bucket", bucket, "err", err)
			}
			if err := doc.Validate(); err != nil {
				logging.Logger.Fatal("Generated document is invalid", "err", err)
			}

			if uploadObject != "" {
				if err := svc.UploadDocument(cmd.Context(), bucket, uploadObject, doc); err != nil {
					logging.Logger.Fatal("Failed to upload gallery document", "err", err)
				}
				return
			}

			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				logging.Logger.Fatal("Failed to encode gallery document", "err", err)
			}
			if outputFile == "-" {
				os.Stdout.Write(append(data, '\n'))
				return
			}
			if err := os.WriteFile(outputFile, data, 0644); err != nil {
				logging.Logger.Fatal("Failed to write gallery document", "file", outputFile, "err", err)
			}
			logging.Logger.Info("Wrote gallery document", "file", outputFile, "items", len(doc.Items))
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "gallery.json", "File to write the document to (- for stdout)")
	cmd.Flags().StringVarP(&uploadObject, "upload", "u", "", "Upload the document to this object in the bucket instead of writing a file")

	return cmd
}
