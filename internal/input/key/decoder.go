package key

import (
	"io"
	"strconv"
)

// decodeState tracks progress through an escape sequence.
type decodeState int

const (
	stateEscape   decodeState = iota // ESC seen, next byte selects CSI/SS3
	stateCSI                         // ESC [ seen
	stateCSIParam                    // collecting numeric parameter bytes
	stateSS3                         // ESC O seen
)

// Decoder turns a raw terminal byte stream into key events.
//
// Decode blocks until a full event is available. Once an escape sequence has
// started, the remaining bytes are read synchronously; a live terminal
// delivers the sequence effectively atomically, so this never stalls in
// practice. At end of stream Decode returns io.EOF.
type Decoder struct {
	r   io.Reader
	buf [1]byte
}

// NewDecoder creates a decoder reading from r. The reader is expected to be
// an unbuffered raw-mode terminal; reads are one byte at a time.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Decode reads bytes until one key event is complete.
//
// Bytes with no mapping (unprintable, high-bit) decode to a KeyNone event
// the caller should skip. Unrecognized or truncated escape sequences decode
// to KeyEscape.
func (d *Decoder) Decode() (Event, error) {
	b, err := d.readByte()
	if err != nil {
		return Event{}, err
	}

	switch b {
	case 1:
		return SpecialEvent(KeyCtrlA), nil
	case 3:
		return SpecialEvent(KeyCtrlC), nil
	case 5:
		return SpecialEvent(KeyCtrlE), nil
	case 11:
		return SpecialEvent(KeyCtrlK), nil
	case 14:
		return SpecialEvent(KeyCtrlN), nil
	case 16:
		return SpecialEvent(KeyCtrlP), nil
	case 21:
		return SpecialEvent(KeyCtrlU), nil
	case 23:
		return SpecialEvent(KeyCtrlW), nil
	case 10, 13:
		return SpecialEvent(KeyEnter), nil
	case 8, 127:
		return SpecialEvent(KeyBackspace), nil
	case 27:
		return d.decodeEscape()
	}

	if b >= 32 && b <= 126 {
		return RuneEvent(rune(b)), nil
	}

	return Event{}, nil
}

// decodeEscape parses the bytes following an ESC with an explicit state
// machine so unknown and incomplete sequences stay total.
func (d *Decoder) decodeEscape() (Event, error) {
	state := stateEscape
	var digits []byte

	for {
		b, err := d.readByte()
		if err != nil {
			return Event{}, err
		}

		switch state {
		case stateEscape:
			switch b {
			case '[':
				state = stateCSI
			case 'O':
				state = stateSS3
			default:
				return SpecialEvent(KeyEscape), nil
			}

		case stateCSI:
			switch {
			case b == 'A':
				return SpecialEvent(KeyUp), nil
			case b == 'B':
				return SpecialEvent(KeyDown), nil
			case b == 'C':
				return SpecialEvent(KeyRight), nil
			case b == 'D':
				return SpecialEvent(KeyLeft), nil
			case b == 'H':
				return SpecialEvent(KeyHome), nil
			case b == 'F':
				return SpecialEvent(KeyEnd), nil
			case b >= '0' && b <= '9':
				digits = append(digits, b)
				state = stateCSIParam
			default:
				return SpecialEvent(KeyEscape), nil
			}

		case stateCSIParam:
			switch {
			case b >= '0' && b <= '9':
				digits = append(digits, b)
			case b == '~':
				return csiTildeEvent(digits), nil
			default:
				return SpecialEvent(KeyEscape), nil
			}

		case stateSS3:
			switch b {
			case 'H':
				return SpecialEvent(KeyHome), nil
			case 'F':
				return SpecialEvent(KeyEnd), nil
			default:
				return SpecialEvent(KeyEscape), nil
			}
		}
	}
}

// csiTildeEvent maps a CSI numeric code terminated by '~' to its key.
func csiTildeEvent(digits []byte) Event {
	code, err := strconv.Atoi(string(digits))
	if err != nil {
		return SpecialEvent(KeyEscape)
	}
	switch code {
	case 1, 7:
		return SpecialEvent(KeyHome)
	case 4, 8:
		return SpecialEvent(KeyEnd)
	case 3:
		return SpecialEvent(KeyDelete)
	default:
		return SpecialEvent(KeyEscape)
	}
}

func (d *Decoder) readByte() (byte, error) {
	for {
		n, err := d.r.Read(d.buf[:1])
		if n > 0 {
			return d.buf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}
