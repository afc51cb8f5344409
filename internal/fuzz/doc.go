// Package fuzztests houses Go fuzz harnesses that exercise the compilation
// pipeline (source -> lexer -> parser -> sema). Its goal is to smoke test
// robustness and guard against panics or hangs on arbitrary inputs.
//
// Назначение: запускать fuzz-обработчики, которые загружают байты в FileSet и
// прогоняют их через лексер, парсер и верификацию модуля.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
