package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo               Code = 1000
	LexUnknownSymbol      Code = 1001
	LexUnterminatedString Code = 1002
	LexUnexpectedEOF      Code = 1003

	// Парсерные
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynUnexpectedEOF      Code = 2002
	SynExpectSemicolon    Code = 2012
	SynModifierNotAllowed Code = 2015
	SynInvalidAttribute   Code = 2016
	SynConstCtor          Code = 2017
	SynDuplicateModifier  Code = 2018
	SynDuplicateAccessor  Code = 2019
	SynUnexpectedTopLevel Code = 2101
	SynExpectIdentifier   Code = 2102
	SynExpectType         Code = 2202
	SynExpectValue        Code = 2203
	SynNestedArray        Code = 2204

	// Семантические
	SemaInfo                 Code = 3000
	SemaError                Code = 3001
	SemaDuplicateSymbol      Code = 3002
	SemaUnresolvedSymbol     Code = 3005
	SemaMissingModule        Code = 3010
	SemaModuleRedeclared     Code = 3011
	SemaReservedName         Code = 3012
	SemaReservedPrefix       Code = 3013
	SemaInvalidAttribute     Code = 3014
	SemaAttributeTarget      Code = 3015
	SemaEnumDuplicateMember  Code = 3020
	SemaStructEmpty          Code = 3030
	SemaStructDuplicateField Code = 3031
	SemaStructSelfField      Code = 3032
	SemaFieldInvalidType     Code = 3033
	SemaClassDuplicateMember Code = 3040
	SemaStaticCtor           Code = 3041
	SemaStaticClassCtor      Code = 3042
	SemaStaticClassMember    Code = 3043
	SemaDelegateReturn       Code = 3050
	SemaDelegateArrayReturn  Code = 3051
	SemaDuplicateParam       Code = 3052
	SemaUnknownVariable      Code = 3060
	SemaVariableType         Code = 3061
	SemaVariableValue        Code = 3062
	SemaImportOrder          Code = 3070

	// IO
	IOLoadFileError  Code = 4001
	IOImportNotFound Code = 4002

	// Проектные
	ProjInfo            Code = 5000
	ProjInvalidManifest Code = 5001
	ProjMissingInput    Code = 5002

	// Наблюдаемость
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:              "Unknown error",
		LexInfo:                  "Lexical information",
		LexUnknownSymbol:         "Unknown symbol",
		LexUnterminatedString:    "Unterminated string",
		LexUnexpectedEOF:         "Unexpected end of file",
		SynInfo:                  "Syntax information",
		SynUnexpectedToken:       "Unexpected token",
		SynUnexpectedEOF:         "Unexpected end of file",
		SynExpectSemicolon:       "Expected semicolon",
		SynModifierNotAllowed:    "Unknown modifier",
		SynInvalidAttribute:      "Invalid attribute",
		SynConstCtor:             "Constructor cannot be const",
		SynDuplicateModifier:     "Modifier specified multiple times",
		SynDuplicateAccessor:     "Accessor specified multiple times",
		SynUnexpectedTopLevel:    "Unexpected top-level token",
		SynExpectIdentifier:      "Expected identifier",
		SynExpectType:            "Expected type",
		SynExpectValue:           "Expected value",
		SynNestedArray:           "Nested arrays are not supported",
		SemaInfo:                 "Semantic information",
		SemaError:                "Semantic error",
		SemaDuplicateSymbol:      "Duplicate symbol",
		SemaUnresolvedSymbol:     "Undefined symbol",
		SemaMissingModule:        "Missing module declaration",
		SemaModuleRedeclared:     "Module declared more than once",
		SemaReservedName:         "Reserved type name",
		SemaReservedPrefix:       "Reserved identifier prefix",
		SemaInvalidAttribute:     "Invalid attribute",
		SemaAttributeTarget:      "Attribute not allowed here",
		SemaEnumDuplicateMember:  "Duplicate enum member",
		SemaStructEmpty:          "Struct without fields",
		SemaStructDuplicateField: "Duplicate struct field",
		SemaStructSelfField:      "Struct contains itself",
		SemaFieldInvalidType:     "Invalid field type",
		SemaClassDuplicateMember: "Duplicate class member",
		SemaStaticCtor:           "Static constructor",
		SemaStaticClassCtor:      "Constructor in static class",
		SemaStaticClassMember:    "Non-static member in static class",
		SemaDelegateReturn:       "Delegate used as return type",
		SemaDelegateArrayReturn:  "Array returned by delegate",
		SemaDuplicateParam:       "Duplicate parameter",
		SemaUnknownVariable:      "Unknown module variable",
		SemaVariableType:         "Module variable type mismatch",
		SemaVariableValue:        "Invalid module variable value",
		SemaImportOrder:          "Import after declarations",
		IOLoadFileError:          "I/O load file error",
		IOImportNotFound:         "Imported file not found",
		ProjInfo:                 "Project information",
		ProjInvalidManifest:      "Invalid project manifest",
		ProjMissingInput:         "Missing input file",
		ObsInfo:                  "Observability information",
		ObsTimings:               "Pipeline timings",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
