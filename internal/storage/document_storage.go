package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
	"github.com/sirupsen/logrus"

	"github.com/adilkhanov/hrdoc-backend/internal/logger"
)

// ErrNotPDF возвращается, когда загруженный файл не является PDF.
var ErrNotPDF = errors.New("storage: файл не является PDF")

// DocumentStorage хранит сканы подписанных документов. Ядро процесса видит
// только относительные пути; содержимое файлов оно никогда не разбирает.
type DocumentStorage struct {
	rootPath       string
	maxUploadBytes int64
}

// NewDocumentStorage создаёт файловое хранилище.
func NewDocumentStorage(rootPath string, maxUploadMB int64) (*DocumentStorage, error) {
	if err := os.MkdirAll(rootPath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: не удалось создать каталог %s: %w", rootPath, err)
	}

	return &DocumentStorage{
		rootPath:       rootPath,
		maxUploadBytes: maxUploadMB * 1024 * 1024,
	}, nil
}

// SavePDF проверяет сигнатуру файла, сохраняет его и возвращает
// относительный путь. Файлы раскладываются по каталогам документов.
func (s *DocumentStorage) SavePDF(ctx context.Context, documentID uuid.UUID, kind string, r io.Reader) (string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	// Сверяем сигнатуру по первым байтам: расширению имени доверять нельзя.
	head := make([]byte, 262)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", 0, fmt.Errorf("storage: ошибка чтения файла: %w", err)
	}
	head = head[:n]

	if !filetype.IsType(head, matchers.TypePdf) {
		return "", 0, ErrNotPDF
	}

	fileName := fmt.Sprintf("%s_%d.pdf", kind, time.Now().UnixNano())
	docDir := filepath.Join(s.rootPath, documentID.String())
	if err := os.MkdirAll(docDir, 0o755); err != nil {
		return "", 0, fmt.Errorf("storage: не удалось создать каталог документа: %w", err)
	}

	targetPath := filepath.Join(docDir, fileName)
	tempPath := targetPath + ".tmp"

	f, err := os.Create(tempPath)
	if err != nil {
		return "", 0, fmt.Errorf("storage: не удалось создать файл: %w", err)
	}
	defer f.Close()

	limitedReader := io.LimitedReader{R: io.MultiReader(bytes.NewReader(head), r), N: s.maxUploadBytes + 1}
	written, err := io.Copy(f, &limitedReader)
	if err != nil {
		_ = os.Remove(tempPath)
		return "", 0, fmt.Errorf("storage: ошибка записи файла: %w", err)
	}

	if written > s.maxUploadBytes {
		_ = os.Remove(tempPath)
		return "", 0, fmt.Errorf("storage: размер файла превышает лимит %d байт", s.maxUploadBytes)
	}

	if err := f.Close(); err != nil {
		return "", 0, fmt.Errorf("storage: ошибка закрытия файла: %w", err)
	}

	if err := os.Rename(tempPath, targetPath); err != nil {
		return "", 0, fmt.Errorf("storage: не удалось переименовать файл: %w", err)
	}

	relative := filepath.Join(documentID.String(), fileName)

	if logger.Log != nil {
		logger.WithComponent("storage").WithFields(logrus.Fields{
			"document_id": documentID,
			"path":        relative,
			"size":        written,
		}).Info("скан сохранён")
	}

	return relative, written, nil
}

// Delete удаляет файл из хранилища.
func (s *DocumentStorage) Delete(ctx context.Context, relativePath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target := filepath.Join(s.rootPath, relativePath)
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: не удалось удалить файл: %w", err)
	}
	return nil
}
