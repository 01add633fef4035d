package doughfall

import "testing"

func TestSnapshotRoundtrip(t *testing.T) {
	cfg := testRuntime(777)
	inputs := scriptedInputs(300)

	g1 := New()
	g1.Reset(cfg)
	for _, in := range inputs {
		g1.Step(in)
	}
	snap := g1.Snapshot()

	g2 := New()
	g2.Reset(cfg)
	g2.ApplySnapshot(snap)
	restored := g2.Snapshot()

	if snap.Hash() != restored.Hash() {
		t.Fatalf("Restored snapshot hash %d, expected %d", restored.Hash(), snap.Hash())
	}
}

func TestSnapshotRestoreContinuesIdentically(t *testing.T) {
	cfg := testRuntime(777)
	warmup := scriptedInputs(300)
	tail := scriptedInputs(200)

	g1 := New()
	g1.Reset(cfg)
	for _, in := range warmup {
		g1.Step(in)
	}
	snap := g1.Snapshot()

	g2 := New()
	g2.Reset(cfg)
	g2.ApplySnapshot(snap)

	for _, in := range tail {
		g1.Step(in)
		g2.Step(in)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()
	if snap1.Hash() != snap2.Hash() {
		t.Error("Restored game diverged from the original")
	}
}

func TestSnapshotCapturesEntities(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	g.spawnBoss()
	g.enemies = append(g.enemies, newEnemy(EnemyBasic, 100, 100, 1, 1, 0, &g.cfg))
	g.addPlayerBullets([]*Bullet{newPlayerBullet(200, 200, up, 10, KindNormal)})

	snap := g.Snapshot()
	if len(snap.EnemyData) == 0 {
		t.Error("Snapshot should carry enemy data")
	}
	if !snap.HasBoss {
		t.Error("Snapshot should carry the boss")
	}
	if len(snap.PlayerBulletData) == 0 {
		t.Error("Snapshot should carry player bullets")
	}
}

func TestSnapshotHashChangesWithState(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	snap1 := g.Snapshot()

	g.score = 1234
	snap2 := g.Snapshot()

	if snap1.Hash() == snap2.Hash() {
		t.Error("Score change should change the hash")
	}
}
