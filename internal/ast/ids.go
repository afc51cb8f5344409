package ast

type (
	// главные сущности
	DeclID   uint32
	ModuleID uint32
	// подсущности
	PayloadID uint32
	MemberID  uint32
	FieldID   uint32
	FuncID    uint32
	ParamID   uint32
	PropID    uint32
)

const (
	NoDeclID    DeclID    = 0
	NoModuleID  ModuleID  = 0
	NoPayloadID PayloadID = 0
	NoMemberID  MemberID  = 0
	NoFieldID   FieldID   = 0
	NoFuncID    FuncID    = 0
	NoParamID   ParamID   = 0
	NoPropID    PropID    = 0
)

func (id DeclID) IsValid() bool    { return id != NoDeclID }
func (id ModuleID) IsValid() bool  { return id != NoModuleID }
func (id PayloadID) IsValid() bool { return id != NoPayloadID }
func (id MemberID) IsValid() bool  { return id != NoMemberID }
func (id FieldID) IsValid() bool   { return id != NoFieldID }
func (id FuncID) IsValid() bool    { return id != NoFuncID }
func (id ParamID) IsValid() bool   { return id != NoParamID }
func (id PropID) IsValid() bool    { return id != NoPropID }
