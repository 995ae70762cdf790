package export

import (
	"encoding/csv"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-report-pipeline/internal/domain"
)

// utf8BOM na frente do arquivo para que planilhas abram os acentos
// corretamente
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVWriter serializa o relatório final em um arquivo CSV
type CSVWriter struct {
	path string
}

func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

// Write grava o relatório completo. Um relatório vazio não gera arquivo.
func (w *CSVWriter) Write(report *domain.Report) error {
	if report.IsEmpty() {
		logrus.Warn("Relatório vazio. Nada para salvar.")
		return nil
	}

	file, err := os.Create(w.path)
	if err != nil {
		return errors.Wrap(err, "erro ao criar arquivo de relatório")
	}
	defer file.Close()

	if _, err := file.Write(utf8BOM); err != nil {
		return errors.Wrap(err, "erro ao escrever BOM")
	}

	writer := csv.NewWriter(file)

	if err := writer.Write(report.Columns); err != nil {
		return errors.Wrap(err, "erro ao escrever cabeçalho")
	}

	for _, row := range report.Rows {
		if err := writer.Write(row); err != nil {
			return errors.Wrap(err, "erro ao escrever linha")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrap(err, "erro ao finalizar escrita do CSV")
	}

	logrus.WithFields(logrus.Fields{
		"path": w.path,
		"rows": len(report.Rows),
	}).Info("Relatório consolidado e processado salvo")

	return nil
}
