package domain

// Table é o conjunto consolidado de linhas de todos os jobs concluídos.
// As linhas ficam na ordem de conclusão dos jobs, que depende da latência
// do serviço remoto e não é determinística entre execuções. O conjunto de
// colunas é a união das colunas retornadas por cada job.
type Table struct {
	Rows    []*InsightRow
	columns map[string]struct{}
}

func NewTable() *Table {
	return &Table{
		Rows:    make([]*InsightRow, 0),
		columns: make(map[string]struct{}),
	}
}

// Append adiciona as linhas de um job concluído, marcando cada uma com o
// cliente dono da conta e acumulando as colunas vistas no resultado
func (t *Table) Append(clientName string, rows []*InsightRow, columns []string) {
	for _, row := range rows {
		row.ClientName = clientName
		t.Rows = append(t.Rows, row)
	}

	if len(rows) > 0 {
		t.columns[ColumnClientName] = struct{}{}
	}

	for _, column := range columns {
		t.columns[column] = struct{}{}
	}
}

// HasColumn indica se a coluna apareceu em algum resultado consolidado
func (t *Table) HasColumn(name string) bool {
	_, ok := t.columns[name]
	return ok
}

func (t *Table) Len() int {
	return len(t.Rows)
}

func (t *Table) IsEmpty() bool {
	return len(t.Rows) == 0
}
