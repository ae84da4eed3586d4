package session

import (
	"log"

	"github.com/decker502/roguedash/pkg/components"
	"github.com/decker502/roguedash/pkg/ecs"
	"github.com/decker502/roguedash/pkg/game"
	"github.com/decker502/roguedash/pkg/systems"
)

// tick 推进一帧模拟
//
// 死亡判定先于波次清空：同一帧内玩家死亡且最后一个敌人消失时结果为 GameOver。
func (s *Session) tick(deltaTime float64, prevEnemies int) {
	s.clock.Advance(deltaTime)
	now := s.clock.Now()

	s.flashes.Update(deltaTime)
	s.movement.Update(deltaTime)
	s.dash.Update(now)
	s.seek.Update(deltaTime)
	s.projectiles.Update(deltaTime)
	s.combat.Update(now)
	result := s.physics.Update(now)
	s.em.RemoveMarkedEntities()

	if result.Kills > 0 {
		s.recordKills(result.Kills)
	}

	if result.PlayerDied || s.playerHealth() <= 0 {
		s.gameOver()
		return
	}

	if prevEnemies > 0 && systems.LiveEnemyCount(s.em) == 0 {
		s.waveCleared()
	}
}

// waveCleared 处理波次清空
// 禅模式下一个批次包含多波，只有最后一波清空时才进入升级界面
func (s *Session) waveCleared() {
	if s.run.Zen {
		batch := s.zenBatchSize()
		if s.zenWave+1 < batch {
			s.zenWave++
			log.Printf("[Session] Zen wave %d/%d cleared", s.zenWave, batch)
			s.waves.SpawnWave(s.modeCfg, s.run.Level+s.zenWave)
			return
		}
		s.advanceLevel(batch)
		return
	}
	s.advanceLevel(1)
}

// zenBatchSize 禅模式批次大小，不超过模式的关卡上限
func (s *Session) zenBatchSize() int {
	batch := s.balance.Progression.ZenBatch
	if levelCap := s.modeCfg.LevelCap; levelCap > 0 && s.run.Level+batch-1 > levelCap {
		batch = levelCap - s.run.Level + 1
	}
	if batch < 1 {
		batch = 1
	}
	return batch
}

// advanceLevel 关卡推进 levels 关；超过模式上限时通关
func (s *Session) advanceLevel(levels int) {
	next := s.run.Level + levels
	if levelCap := s.modeCfg.LevelCap; levelCap > 0 && next > levelCap {
		log.Printf("[Session] Mode %s cleared at level %d", s.run.Mode, s.run.Level)
		s.finish(StateGameWon)
		return
	}

	s.run.Level = next
	bonus := s.balance.Progression.WaveClearHealthBonus * levels
	if health, ok := ecs.GetComponent[*components.HealthComponent](s.em, s.playerID); ok {
		health.MaxHealth += bonus
		health.CurrentHealth += bonus
		if health.CurrentHealth > health.MaxHealth {
			health.CurrentHealth = health.MaxHealth
		}
	}

	// 清理残留子弹，升级界面中世界保持静止
	for _, id := range ecs.GetEntitiesWith1[*components.ProjectileComponent](s.em) {
		s.em.DestroyEntity(id)
	}
	s.em.RemoveMarkedEntities()

	s.zenWave = 0
	log.Printf("[Session] Wave cleared, level -> %d (+%d max health)", next, bonus)
	s.setState(StateUpgrading)
}

// gameOver 玩家死亡；无尽模式下更新最高分
func (s *Session) gameOver() {
	log.Printf("[Session] Player died at level %d (mode=%s)", s.run.Level, s.run.Mode)
	var persistErr error
	if s.run.Mode == game.ModeEndless {
		if name, _, ok := s.accounts.Current(); ok {
			if _, err := s.accounts.UpdateHighscore(name, s.run.Level); err != nil {
				log.Printf("[Session] Failed to persist highscore: %v", err)
				persistErr = err
			}
		}
	}
	s.finish(StateGameOver)
	if persistErr != nil {
		s.notice = "failed to save highscore"
	}
}

// finish 一局结束：来自存档的一局删除其存档
func (s *Session) finish(next State) {
	s.syncRun()
	if s.continued {
		if _, acc, ok := s.accounts.Current(); ok {
			if err := s.saves.Delete(acc.SaveFile); err != nil {
				log.Printf("[Session] Failed to delete finished save: %v", err)
			}
		}
		s.continued = false
	}
	s.setState(next)
}

func (s *Session) playerComponent() (*components.PlayerComponent, bool) {
	return ecs.GetComponent[*components.PlayerComponent](s.em, s.playerID)
}

func (s *Session) playerHealth() int {
	if health, ok := ecs.GetComponent[*components.HealthComponent](s.em, s.playerID); ok {
		return health.CurrentHealth
	}
	return 0
}
