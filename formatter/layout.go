package formatter

const (
	// IDWidth is the width of the pid and tid columns.
	IDWidth = 5
	// TimeFieldWidth is the width of month, day, hour, minute and second.
	TimeFieldWidth = 2
	// MillisWidth is the width of the milliseconds column.
	MillisWidth = 3
	// ThreadInfoSize is the size of the "MM-DD HH:MM:SS.mmm PID TID L " prefix.
	ThreadInfoSize = TimeFieldWidth*5 + MillisWidth + IDWidth*2 + 10
	// MinTagFieldSize is the minimum width LogCat reserves for a tag.
	MinTagFieldSize = 8
)

// Fixed offsets inside the thread-info block.
const (
	offMonth  = 0
	offDay    = 3
	offHour   = 6
	offMinute = 9
	offSecond = 12
	offMillis = 15
	offPID    = 19
	offTID    = 25
	// OffLevel is the offset of the level character.
	OffLevel = 31
)

// Layout holds the byte offsets of one record. The thread-info block always
// starts at offset zero.
type Layout struct {
	// ProcessTagStart is where the process tag field begins.
	ProcessTagStart int
	// ProcessTagEnd is one past the padded process tag field. The ':'
	// delimiter is written here.
	ProcessTagEnd int
	// ClassTagStart is where the class tag begins.
	ClassTagStart int
	// MessageStart is where the message begins.
	MessageStart int
	// MessageEnd is one past the message. The trailing '\n' is written here.
	MessageEnd int
	// Size is the total number of bytes the record needs.
	Size int
}

// NewLayout computes the offsets of a record from the process tag, class tag
// and message lengths.
func NewLayout(processTagLen, classTagLen, msgLen int) Layout {
	ptf := max(processTagLen, MinTagFieldSize)
	var l Layout
	l.ProcessTagStart = ThreadInfoSize
	l.ProcessTagEnd = l.ProcessTagStart + ptf
	l.ClassTagStart = l.ProcessTagEnd + 2
	l.MessageStart = l.ClassTagStart + classTagLen
	l.MessageEnd = l.MessageStart + msgLen
	l.Size = l.MessageEnd + 1
	return l
}
