package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pincode-tools/internal/decrypt"
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Remove password encryption from a PDF",
	Long: `Decrypt opens a password-protected PDF with the supplied password and
writes a decrypted copy. AES-256 encrypted documents are supported.

The password comes from --password or, to keep it out of shell history,
from a file via --password-file (contents are trimmed).`,
	RunE: runDecrypt,
}

func init() {
	decryptCmd.Flags().String("in", "", "encrypted input PDF")
	decryptCmd.Flags().String("out", "", "path for the decrypted copy")
	decryptCmd.Flags().String("password", "", "document password")
	decryptCmd.Flags().String("password-file", "", "file containing the document password")
	decryptCmd.MarkFlagRequired("in")
	decryptCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(decryptCmd)
}

func runDecrypt(cmd *cobra.Command, args []string) error {
	inPath, _ := cmd.Flags().GetString("in")
	outPath, _ := cmd.Flags().GetString("out")
	password, _ := cmd.Flags().GetString("password")
	passwordFile, _ := cmd.Flags().GetString("password-file")

	if (password == "") == (passwordFile == "") {
		return fmt.Errorf("provide exactly one of --password or --password-file")
	}
	if passwordFile != "" {
		var err error
		password, err = decrypt.ReadPasswordFile(passwordFile)
		if err != nil {
			return err
		}
	}

	return decrypt.Run(decrypt.PDFCPU{}, inPath, outPath, password, os.Stdout)
}
