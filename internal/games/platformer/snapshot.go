package platformer

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Tick      uint64     `msgpack:"tick"`
	Seed      int64      `msgpack:"seed"`
	Platforms []Platform `msgpack:"platforms"`
	Coins     []Coin     `msgpack:"coins"`
	Enemies   []Enemy    `msgpack:"enemies"`
	Particles []Particle `msgpack:"particles"`
	Player    Player     `msgpack:"player"`
	State     GameState  `msgpack:"state"`
	Camera    Camera     `msgpack:"camera"`
	DayNight  DayNight   `msgpack:"day_night"`
	CoinSpin  float64    `msgpack:"coin_spin"`
}

// Snapshot copies the current session state.
func (s *Session) Snapshot() Snapshot {
	w := s.world.Clone()
	return Snapshot{
		Tick:      s.tick,
		Seed:      s.seed,
		Platforms: w.Platforms,
		Coins:     w.Coins,
		Enemies:   w.Enemies,
		Particles: s.particles.Items(),
		Player:    s.player,
		State:     s.state,
		Camera:    s.camera,
		DayNight:  s.dayNight,
		CoinSpin:  s.coinSpin,
	}
}

// Encode serializes the snapshot with msgpack.
func (snap Snapshot) Encode() ([]byte, error) {
	data, err := msgpack.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("snapshot: encode: %w", err)
	}
	return data, nil
}

// DecodeSnapshot is the inverse of Encode.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("snapshot: decode: %w", err)
	}
	return snap, nil
}

// Hash fingerprints the simulated state. The run start time is wall clock
// and is left out, so two sessions fed the same seed and inputs hash equal.
func (snap Snapshot) Hash() (uint64, error) {
	snap.State.StartedAt = time.Time{}
	data, err := snap.Encode()
	if err != nil {
		return 0, err
	}
	h := fnv.New64a()
	_, _ = h.Write(data)
	return h.Sum64(), nil
}
