// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package decrypt

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimalPDF is a one-page PDF, just enough structure for pdfcpu to
// encrypt and validate. The xref offsets are exact; do not reflow the
// body. Each xref entry is 20 bytes, hence the explicit trailing spaces.
const minimalPDF = `%PDF-1.4
1 0 obj
<< /Type /Catalog /Pages 2 0 R >>
endobj
2 0 obj
<< /Type /Pages /Kids [3 0 R] /Count 1 >>
endobj
3 0 obj
<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << >> >>
endobj
` +
	"xref\n0 4\n" +
	"0000000000 65535 f \n" +
	"0000000009 00000 n \n" +
	"0000000058 00000 n \n" +
	"0000000115 00000 n \n" +
	"trailer\n<< /Size 4 /Root 1 0 R >>\nstartxref\n203\n%%EOF\n"

// fakeDecryptor records the call and returns a canned error. On success
// it writes the output file, like the real implementation does.
type fakeDecryptor struct {
	err      error
	inPath   string
	outPath  string
	password string
}

func (f *fakeDecryptor) Decrypt(inPath, outPath, password string) error {
	f.inPath = inPath
	f.outPath = outPath
	f.password = password
	if f.err != nil {
		return f.err
	}
	return os.WriteFile(outPath, []byte("decrypted pdf"), 0o644)
}

func setupPDF(t *testing.T) (pdfPath, tmpDir string) {
	t.Helper()
	tmpDir = t.TempDir()
	pdfPath = filepath.Join(tmpDir, "statement.pdf")
	require.NoError(t, os.WriteFile(pdfPath, []byte("encrypted pdf"), 0o644))
	return pdfPath, tmpDir
}

func TestRun(t *testing.T) {
	pdfPath, tmpDir := setupPDF(t)
	outPath := filepath.Join(tmpDir, "statement-decrypted.pdf")
	fake := &fakeDecryptor{}

	var log bytes.Buffer
	require.NoError(t, Run(fake, pdfPath, outPath, "hunter2", &log))

	assert.Equal(t, pdfPath, fake.inPath)
	assert.Equal(t, "hunter2", fake.password)
	assert.FileExists(t, outPath)
	assert.Contains(t, log.String(), "decrypted:")
}

func TestRunMissingInput(t *testing.T) {
	tmpDir := t.TempDir()
	missing := filepath.Join(tmpDir, "absent.pdf")
	fake := &fakeDecryptor{}

	var log bytes.Buffer
	err := Run(fake, missing, filepath.Join(tmpDir, "out.pdf"), "pw", &log)

	require.Error(t, err)
	assert.Contains(t, err.Error(), missing)
	// The decryptor must not run against a missing input.
	assert.Empty(t, fake.inPath)
}

func TestRunDecryptFailure(t *testing.T) {
	pdfPath, tmpDir := setupPDF(t)
	outPath := filepath.Join(tmpDir, "out.pdf")
	fake := &fakeDecryptor{err: errors.New("pdfcpu: please provide the correct password")}

	var log bytes.Buffer
	err := Run(fake, pdfPath, outPath, "wrong", &log)

	require.Error(t, err)
	assert.NoFileExists(t, outPath)
	assert.Empty(t, log.String())
}

func TestPDFCPURoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	plain := filepath.Join(tmpDir, "plain.pdf")
	require.NoError(t, os.WriteFile(plain, []byte(minimalPDF), 0o644))

	enc := filepath.Join(tmpDir, "encrypted.pdf")
	require.NoError(t, api.EncryptFile(plain, enc, model.NewAESConfiguration("hunter2", "hunter2", 256)))

	outPath := filepath.Join(tmpDir, "decrypted.pdf")

	// Wrong password: the diagnostic says so, and no output appears.
	var log bytes.Buffer
	err := Run(PDFCPU{}, enc, outPath, "wrong", &log)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incorrect password")
	assert.Contains(t, err.Error(), enc)
	assert.NoFileExists(t, outPath)

	// Right password: the output opens without any password.
	require.NoError(t, Run(PDFCPU{}, enc, outPath, "hunter2", &log))
	require.FileExists(t, outPath)
	require.NoError(t, api.ValidateFile(outPath, nil))
	assert.Contains(t, log.String(), "decrypted:")
}

func TestReadPasswordFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		errMsg  string
	}{
		{name: "plain password", content: "hunter2", want: "hunter2"},
		{name: "trailing newline trimmed", content: "hunter2\n", want: "hunter2"},
		{name: "surrounding whitespace trimmed", content: "  hunter2  \n", want: "hunter2"},
		{name: "empty file", content: "", errMsg: "is empty"},
		{name: "whitespace only", content: " \n\t", errMsg: "is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "password")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			got, err := ReadPasswordFile(path)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadPasswordFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent")
	_, err := ReadPasswordFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
