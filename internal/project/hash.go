package project

import (
	"crypto/sha256"
	"encoding/binary"
)

// Digest - фиксированный 256 битный хеш (совместим с source.File.Hash)
type Digest [32]byte

// Combine строит составной хеш: H( content || dep1 || dep2 ... ).
// Порядок deps должен быть детерминированным.
func Combine(content Digest, deps ...Digest) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, d := range deps {
		_, _ = h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// SettingsDigest хеширует настройки, влияющие на результат проверки.
func SettingsDigest(strictImports bool, moduleID uint32, toolVersion string) Digest {
	h := sha256.New()
	var buf [5]byte
	if strictImports {
		buf[0] = 1
	}
	binary.LittleEndian.PutUint32(buf[1:], moduleID)
	_, _ = h.Write(buf[:])
	_, _ = h.Write([]byte(toolVersion))
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
