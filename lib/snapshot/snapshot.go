// Copyright 2026 MVGR Soft
// SPDX-License-Identifier: Apache-2.0

package snapshot

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/zeebo/blake3"

	"github.com/mvgr-soft/taller/taller"
)

// ErrCorrupt is returned when a snapshot file cannot be trusted:
// bad magic, unknown version, checksum mismatch, or undecodable body.
var ErrCorrupt = errors.New("snapshot: file corrupt")

// formatVersion is bumped whenever the body schema changes in a way
// old readers cannot handle. Readers reject versions they don't know.
const formatVersion uint16 = 1

// magic identifies a snapshot file. Eight bytes so the header stays
// 8-byte aligned.
var magic = [8]byte{'T', 'L', 'L', 'R', 'S', 'N', 'A', 'P'}

// headerSize is magic (8) + version (2) + reserved (2) + body length
// (4) + BLAKE3 checksum of the uncompressed body (32).
const headerSize = 8 + 2 + 2 + 4 + 32

// maxBodySize caps the uncompressed body so a corrupt length field
// cannot trigger a huge allocation.
const maxBodySize = 64 << 20

// Snapshot is the dashboard's persisted view of the backend data.
type Snapshot struct {
	// SavedAt is when the snapshot was written. The dashboard shows
	// it as the data's age until the first live refresh completes.
	SavedAt time.Time `cbor:"savedAt"`

	Clientes     []taller.Cliente    `cbor:"clientes"`
	Equipos      []taller.Equipo     `cbor:"equipos"`
	Reparaciones []taller.Reparacion `cbor:"reparaciones"`
	Repuestos    []taller.Repuesto   `cbor:"repuestos"`
}

// encMode uses Core Deterministic Encoding so identical data always
// produces identical bytes, which makes the checksum meaningful as a
// change detector too.
var encMode cbor.EncMode

var decMode cbor.DecMode

// zstd encoder/decoder are stateless for our use and shared to avoid
// repeated initialization.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error

	encOptions := cbor.CoreDetEncOptions()
	encOptions.Time = cbor.TimeRFC3339Nano
	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("snapshot: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("snapshot: CBOR decoder initialization failed: " + err.Error())
	}

	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("snapshot: zstd encoder initialization failed: " + err.Error())
	}
	// The memory cap binds during decompression: a crafted frame
	// header cannot force an allocation beyond maxBodySize.
	zstdDecoder, err = zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxBodySize))
	if err != nil {
		panic("snapshot: zstd decoder initialization failed: " + err.Error())
	}
}

// Save writes the snapshot to path atomically (temp file + rename).
// The parent directory is created if needed.
func Save(path string, snap *Snapshot) error {
	body, err := encMode.Marshal(snap)
	if err != nil {
		return fmt.Errorf("snapshot: encode: %w", err)
	}
	if len(body) > maxBodySize {
		return fmt.Errorf("snapshot: body too large: %d bytes", len(body))
	}

	checksum := blake3.Sum256(body)
	compressed := zstdEncoder.EncodeAll(body, make([]byte, 0, len(body)/2))

	var buffer bytes.Buffer
	buffer.Write(magic[:])
	binary.Write(&buffer, binary.LittleEndian, formatVersion)
	binary.Write(&buffer, binary.LittleEndian, uint16(0)) // reserved
	binary.Write(&buffer, binary.LittleEndian, uint32(len(body)))
	buffer.Write(checksum[:])
	buffer.Write(compressed)

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	temp := path + ".tmp"
	if err := os.WriteFile(temp, buffer.Bytes(), 0o600); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := os.Rename(temp, path); err != nil {
		os.Remove(temp)
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}

// Load reads and verifies a snapshot from path. A missing file is
// reported as os.ErrNotExist; anything untrustworthy as ErrCorrupt.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: short file (%d bytes)", ErrCorrupt, len(data))
	}
	if !bytes.Equal(data[:8], magic[:]) {
		return nil, fmt.Errorf("%w: bad magic", ErrCorrupt)
	}

	version := binary.LittleEndian.Uint16(data[8:10])
	if version != formatVersion {
		return nil, fmt.Errorf("%w: unknown format version %d", ErrCorrupt, version)
	}

	bodySize := binary.LittleEndian.Uint32(data[12:16])
	if bodySize > maxBodySize {
		return nil, fmt.Errorf("%w: implausible body size %d", ErrCorrupt, bodySize)
	}

	var checksum [32]byte
	copy(checksum[:], data[16:48])

	body, err := zstdDecoder.DecodeAll(data[headerSize:], make([]byte, 0, bodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if uint32(len(body)) != bodySize {
		return nil, fmt.Errorf("%w: body size %d, header says %d", ErrCorrupt, len(body), bodySize)
	}
	if blake3.Sum256(body) != checksum {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrCorrupt)
	}

	var snap Snapshot
	if err := decMode.Unmarshal(body, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return &snap, nil
}
