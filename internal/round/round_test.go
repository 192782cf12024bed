package round_test

import (
	"bytes"
	"encoding/json"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"github.com/san-kum/orbitlander/internal/dynamo"
	"github.com/san-kum/orbitlander/internal/round"
)

var _ = Describe("Round", func() {
	var clock *round.ManualClock

	BeforeEach(func() {
		clock = round.NewManualClock()
	})

	emptyLevel := func(win dynamo.WinCondition, craft dynamo.Craft) dynamo.Level {
		return dynamo.Level{Name: "empty", InitialCraft: craft, Win: win}
	}

	farWin := dynamo.CircleAnySpeed{X: 10000, Y: 10000, Radius: 1}

	Describe("New", func() {
		It("copies the initial craft and starts at zero elapsed time", func() {
			initial := dynamo.Craft{X: 1, Y: 2, VX: 3, Orientation: 90, Fuel: 20}
			r := round.New(emptyLevel(farWin, initial), round.WithClock(clock))

			Expect(r.Craft()).To(Equal(initial))
			Expect(r.Elapsed()).To(BeZero())
			Expect(r.ID()).NotTo(BeEmpty())
		})

		It("does not share craft state with the level", func() {
			level := emptyLevel(farWin, dynamo.Craft{Fuel: 20})
			r := round.New(level, round.WithClock(clock))
			r.Controls().Fuel = 3

			Expect(level.InitialCraft.Fuel).To(Equal(20.0))
		})
	})

	Describe("Elapsed and CurrentBodies", func() {
		var r *round.Round
		var def dynamo.BodyDef

		BeforeEach(func() {
			def = dynamo.BodyDef{CenterX: 500, CenterY: 500, Radius: 15, Orbit: &dynamo.Orbit{Radius: 150, Speed: 0.5}}
			level := dynamo.Level{
				Name:         "orbiting",
				Bodies:       []dynamo.BodyDef{{CenterX: 500, CenterY: 500, Radius: 30}, def},
				InitialCraft: dynamo.Craft{Fuel: 20},
				Win:          farWin,
			}
			r = round.New(level, round.WithClock(clock))
		})

		It("follows the clock", func() {
			clock.AdvanceSeconds(2.5)
			Expect(r.Elapsed()).To(BeNumerically("~", 2.5, 1e-9))
		})

		It("re-evaluates orbiting bodies at the current elapsed time", func() {
			Expect(r.CurrentBodies()[1]).To(Equal(def.PositionAt(0)))

			clock.AdvanceSeconds(1)
			bodies := r.CurrentBodies()
			Expect(bodies).To(HaveLen(2))
			Expect(bodies[0]).To(Equal(dynamo.Body{X: 500, Y: 500, Radius: 30}))
			Expect(bodies[1].X).To(BeNumerically("~", def.PositionAt(1).X, 1e-9))
			Expect(bodies[1].Y).To(BeNumerically("~", def.PositionAt(1).Y, 1e-9))
		})
	})

	Describe("Tick", func() {
		It("moves a free craft and reports None", func() {
			r := round.New(emptyLevel(farWin, dynamo.Craft{VX: 100, Fuel: 20}), round.WithClock(clock))

			Expect(r.Tick(1)).To(Equal(round.None))
			Expect(r.Craft().X).To(BeNumerically("~", 100, 1e-9))
		})

		Context("when the craft enters a body", func() {
			var r *round.Round
			var initial dynamo.Craft

			BeforeEach(func() {
				initial = dynamo.Craft{X: 60, Y: 0, VX: 100, Orientation: 90, Fuel: 20}
				level := dynamo.Level{
					Name:         "wall",
					Bodies:       []dynamo.BodyDef{{CenterX: 100, CenterY: 0, Radius: 30}},
					InitialCraft: initial,
					Win:          farWin,
				}
				r = round.New(level, round.WithClock(clock))
			})

			It("reports Collision and restores the initial craft", func() {
				r.Controls().EngineOn = true
				r.Controls().Orientation = 270

				Expect(r.Tick(0.05)).To(Equal(round.Collision))
				Expect(r.Craft()).To(Equal(initial))
				Expect(r.Collisions()).To(Equal(1))
			})

			It("keeps elapsed time running across the reset", func() {
				clock.AdvanceSeconds(3)
				r.Tick(0.05)
				Expect(r.Elapsed()).To(BeNumerically("~", 3, 1e-9))
			})
		})

		It("reports Win when the craft drifts inside the circle with the engine off", func() {
			initial := dynamo.Craft{X: 5, Y: 5, Fuel: 20}
			r := round.New(emptyLevel(dynamo.CircleAnySpeed{X: 0, Y: 0, Radius: 50}, initial), round.WithClock(clock))

			Expect(r.Tick(0.1)).To(Equal(round.Win))
			Expect(r.Won()).To(BeTrue())
			Expect(r.Craft()).To(Equal(initial))
		})

		It("never wins with the engine on", func() {
			r := round.New(emptyLevel(dynamo.CircleAnySpeed{Radius: 1000}, dynamo.Craft{Fuel: 20}), round.WithClock(clock))
			r.Controls().EngineOn = true

			Expect(r.Tick(0.01)).To(Equal(round.None))
		})

		It("respects the speed limit of CircleUnderSpeed", func() {
			win := dynamo.CircleUnderSpeed{Radius: 1000, MaxSpeed: 2}
			fast := round.New(emptyLevel(win, dynamo.Craft{VX: 10}), round.WithClock(clock))
			slow := round.New(emptyLevel(win, dynamo.Craft{VX: 1}), round.WithClock(clock))

			Expect(fast.Tick(0.01)).To(Equal(round.None))
			Expect(slow.Tick(0.01)).To(Equal(round.Win))
		})

		It("checks collision before the win condition", func() {
			level := dynamo.Level{
				Name:         "trap",
				Bodies:       []dynamo.BodyDef{{CenterX: 0, CenterY: 0, Radius: 20}},
				InitialCraft: dynamo.Craft{},
				Win:          dynamo.CircleAnySpeed{Radius: 100},
			}
			r := round.New(level, round.WithClock(clock))

			Expect(r.Tick(0.01)).To(Equal(round.Collision))
			Expect(r.Won()).To(BeFalse())
		})
	})

	Describe("Reset and Restart", func() {
		var r *round.Round
		var initial dynamo.Craft

		BeforeEach(func() {
			initial = dynamo.Craft{X: 10, Fuel: 20}
			r = round.New(emptyLevel(farWin, initial), round.WithClock(clock))
			r.Controls().EngineOn = true
			r.Tick(1)
			clock.AdvanceSeconds(4)
		})

		It("Reset restores the craft but keeps the clock", func() {
			r.Reset()
			Expect(r.Craft()).To(Equal(initial))
			Expect(r.Elapsed()).To(BeNumerically("~", 4, 1e-9))
		})

		It("Restart starts a new round", func() {
			id := r.ID()
			r.Restart()
			Expect(r.Craft()).To(Equal(initial))
			Expect(r.Elapsed()).To(BeZero())
			Expect(r.ID()).NotTo(Equal(id))
		})
	})

	Describe("logging", func() {
		It("logs collisions with the round id and level", func() {
			var buf bytes.Buffer
			level := dynamo.Level{
				Name:         "logged",
				Bodies:       []dynamo.BodyDef{{CenterX: 0, CenterY: 0, Radius: 20}},
				InitialCraft: dynamo.Craft{},
				Win:          farWin,
			}
			r := round.New(level, round.WithClock(clock), round.WithLogger(zerolog.New(&buf).Level(zerolog.InfoLevel)))
			r.Tick(0.01)

			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			Expect(lines).To(HaveLen(1))

			var entry map[string]any
			Expect(json.Unmarshal([]byte(lines[0]), &entry)).To(Succeed())
			Expect(entry).To(HaveKeyWithValue("message", "collision"))
			Expect(entry).To(HaveKeyWithValue("round_id", r.ID()))
			Expect(entry).To(HaveKeyWithValue("level", "logged"))
			Expect(entry).To(HaveKey("elapsed"))
		})
	})
})

var _ = DescribeTable("Outcome.String",
	func(o round.Outcome, want string) {
		Expect(o.String()).To(Equal(want))
	},
	Entry("none", round.None, "none"),
	Entry("collision", round.Collision, "collision"),
	Entry("win", round.Win, "win"),
	Entry("unknown", round.Outcome(42), "unknown"),
)
