package models

import "strings"

// Delimiter разделяет поля в строке файла; экранирования нет,
// символ внутри поля ломает разбор строки
const Delimiter = "|"

func splitLine(line string) []string {
	return strings.Split(line, Delimiter)
}
