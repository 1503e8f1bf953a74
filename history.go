package taa

import (
	"fmt"
	"log/slog"
)

// Eye selects which view's history pair a resolve touches. Mono rendering
// uses EyeLeft; stereo hosts resolve each eye with its own history.
type Eye int

const (
	// EyeLeft is the left (or only) viewpoint.
	EyeLeft Eye = 0

	// EyeRight is the right viewpoint in stereo rendering.
	EyeRight Eye = 1

	numEyes = 2
)

// historyState is the lifecycle tag of one eye's ping-pong pair.
type historyState uint8

const (
	// historyUninitialized means no buffers exist yet. The first resolve
	// allocates the pair and seeds it from the current frame.
	historyUninitialized historyState = iota

	// historySteady means both slots are valid and ping-ponging.
	historySteady

	// historyResetPending means a reset was requested: the buffers exist
	// but their contents are stale, and the next resolve reseeds.
	historyResetPending
)

// historyPair owns the two ping-ponged history buffers of one eye.
// Slots are addressed by index; read and write always differ.
type historyPair struct {
	state historyState
	read  int
	write int
	slots [2]*Buffer
}

// historyManager owns the per-eye history pairs and drives their
// lifecycle: lazy allocation, seeding, resize carry-forward, reset and
// release.
type historyManager struct {
	pairs [numEyes]historyPair
}

// framePrep describes what the resolve kernel should do with history for
// the current frame.
type framePrep struct {
	read  *Buffer
	write *Buffer

	// seed is true when history is stale or absent: the kernel skips
	// reprojection and outputs the filtered current color.
	seed bool
}

// prepare readies the eye's pair for a resolve at the given dimensions and
// reports whether this frame seeds. On allocation failure the previous
// state is left untouched so the next frame can retry.
func (m *historyManager) prepare(eye Eye, width, height int, src *Buffer, log *slog.Logger) (framePrep, error) {
	p := &m.pairs[eye]

	switch p.state {
	case historyUninitialized:
		if err := p.allocate(width, height); err != nil {
			return framePrep{}, err
		}
		// Seed the read slot from the current frame so both slots hold
		// defined data from the first frame on.
		_ = p.slots[p.read].CopyFrom(src)
		p.state = historySteady
		log.Debug("taa: history allocated", "eye", int(eye), "width", width, "height", height)
		return framePrep{read: p.slots[p.read], write: p.slots[p.write], seed: true}, nil

	case historyResetPending:
		if err := p.reallocateIfNeeded(width, height); err != nil {
			return framePrep{}, err
		}
		_ = p.slots[p.read].CopyFrom(src)
		p.state = historySteady
		log.Debug("taa: history reseeded", "eye", int(eye))
		return framePrep{read: p.slots[p.read], write: p.slots[p.write], seed: true}, nil

	case historySteady:
		cur := p.slots[p.read]
		if cur.Width() != width || cur.Height() != height {
			if err := p.resize(width, height); err != nil {
				return framePrep{}, err
			}
			log.Debug("taa: history resized", "eye", int(eye), "width", width, "height", height)
		}
		return framePrep{read: p.slots[p.read], write: p.slots[p.write], seed: false}, nil

	default:
		return framePrep{}, fmt.Errorf("taa: invalid history state %d", p.state)
	}
}

// commit swaps the read and write roles after a completed resolve.
// Never called for a failed or dropped frame, so a retry sees the same
// slots it saw before.
func (m *historyManager) commit(eye Eye) {
	p := &m.pairs[eye]
	p.read, p.write = p.write, p.read
}

// reset marks every allocated pair stale. Buffers are kept; the next
// resolve reseeds them from the current frame.
func (m *historyManager) reset() {
	for i := range m.pairs {
		if m.pairs[i].state == historySteady {
			m.pairs[i].state = historyResetPending
		}
	}
}

// release frees all buffers and returns every pair to the uninitialized
// state. Subsequent resolves start over as on first use.
func (m *historyManager) release() {
	for i := range m.pairs {
		m.pairs[i] = historyPair{}
	}
}

// allocated reports whether any eye currently holds buffers.
func (m *historyManager) allocated() bool {
	for i := range m.pairs {
		if m.pairs[i].slots[0] != nil {
			return true
		}
	}
	return false
}

// allocate creates both slots at the given size and resets the slot roles.
func (p *historyPair) allocate(width, height int) error {
	a, err := NewBuffer(width, height)
	if err != nil {
		return err
	}
	b, err := NewBuffer(width, height)
	if err != nil {
		return err
	}
	p.slots[0] = a
	p.slots[1] = b
	p.read = 0
	p.write = 1
	return nil
}

// reallocateIfNeeded replaces the pair when its size no longer matches.
// Contents are not preserved; callers reseed afterwards.
func (p *historyPair) reallocateIfNeeded(width, height int) error {
	if p.slots[0] != nil && p.slots[0].Width() == width && p.slots[0].Height() == height {
		return nil
	}
	return p.allocate(width, height)
}

// resize moves the pair to new dimensions, stretch-blitting the current
// read contents forward so accumulated antialiasing survives the resize
// instead of popping back to an aliased seed frame. The old pair is only
// dropped once both new buffers exist.
func (p *historyPair) resize(width, height int) error {
	newRead, err := NewBuffer(width, height)
	if err != nil {
		return err
	}
	newWrite, err := NewBuffer(width, height)
	if err != nil {
		return err
	}
	newRead.BlitScaled(p.slots[p.read])

	p.slots[p.read] = newRead
	p.slots[p.write] = newWrite
	return nil
}
