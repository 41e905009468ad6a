// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package decrypt removes password encryption from PDF files.
package decrypt

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Decryptor removes encryption from a PDF, writing a decrypted copy.
// The pdfcpu-backed implementation is the production one; tests inject
// fakes.
type Decryptor interface {
	Decrypt(inPath, outPath, password string) error
}

// PDFCPU decrypts with the pdfcpu library. Handles AES-256 encrypted
// files, which is why this tool exists at all.
type PDFCPU struct{}

// wrongPasswordMsg is the fixed phrase pdfcpu uses to report a bad password.
const wrongPasswordMsg = "please provide the correct password"

func (PDFCPU) Decrypt(inPath, outPath, password string) error {
	conf := model.NewAESConfiguration(password, "", 256)
	if err := api.DecryptFile(inPath, outPath, conf); err != nil {
		if strings.Contains(err.Error(), wrongPasswordMsg) {
			return fmt.Errorf("incorrect password for %s", inPath)
		}
		return fmt.Errorf("decrypting %s: %w", inPath, err)
	}
	return nil
}

// Run validates the input path, decrypts it with d, and reports the
// outcome to w. The output file is only written on success.
func Run(d Decryptor, inPath, outPath, password string, w io.Writer) error {
	if _, err := os.Stat(inPath); err != nil {
		return fmt.Errorf("input file not found: %s", inPath)
	}
	if err := d.Decrypt(inPath, outPath, password); err != nil {
		return err
	}
	fmt.Fprintf(w, "decrypted: %s -> %s\n", inPath, outPath)
	return nil
}

// ReadPasswordFile reads a password from a file, trimming surrounding
// whitespace so trailing newlines from editors do not end up in the
// password.
func ReadPasswordFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading password file %s: %w", path, err)
	}
	password := strings.TrimSpace(string(data))
	if password == "" {
		return "", fmt.Errorf("password file %s is empty", path)
	}
	return password, nil
}
