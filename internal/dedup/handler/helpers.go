package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"dedup-service/internal/dedup/model"
	"dedup-service/internal/textenc"
	"dedup-service/internal/utils"
)

var errNoName = errors.New("file name is required: send a file part or a name field")

// candidateFromForm собирает кандидата из формы.
// Имя и размер берутся из части "file"; поля name/size имеют приоритет.
// Текст: поле extracted_text или файл text_file.
func candidateFromForm(r *http.Request) (model.UploadCandidate, error) {
	var c model.UploadCandidate

	if f, hdr, err := r.FormFile("file"); err == nil {
		f.Close()
		c.Name = hdr.Filename
		if hdr.Size > 0 {
			c.SizeBytes = uint64(hdr.Size)
		}
	} else if !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
		return c, fmt.Errorf("bad file part: %w", err)
	}

	if v := strings.TrimSpace(r.FormValue("name")); v != "" {
		c.Name = v
	}
	if v := strings.TrimSpace(r.FormValue("size")); v != "" {
		n, ok := utils.ParseSize(v)
		if !ok {
			return c, fmt.Errorf("bad size %q", v)
		}
		c.SizeBytes = n
	}
	if strings.TrimSpace(c.Name) == "" {
		return c, errNoName
	}

	text, err := textFromForm(r)
	if err != nil {
		return c, err
	}
	if text != "" {
		c.ExtractedText = model.Text(text)
	}
	return c, nil
}

func textFromForm(r *http.Request) (string, error) {
	if v := r.FormValue("extracted_text"); v != "" {
		return textenc.Decode([]byte(v)), nil
	}
	f, _, err := r.FormFile("text_file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", fmt.Errorf("bad text_file part: %w", err)
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("read text_file: %w", err)
	}
	return textenc.Decode(b), nil
}
