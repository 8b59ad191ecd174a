// seed 向开发库写入用户、关注、帖子与点赞，并打印各读路径的耗时
package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/d60-Lab/campus-social/config"
	"github.com/d60-Lab/campus-social/internal/model"
	"github.com/d60-Lab/campus-social/internal/repository"
	"github.com/d60-Lab/campus-social/internal/service"
	"github.com/d60-Lab/campus-social/pkg/database"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func envInt(name string, def int) int {
	if s := os.Getenv(name); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func pct(vs []time.Duration, p float64) time.Duration {
	if len(vs) == 0 {
		return 0
	}
	xs := append([]time.Duration(nil), vs...)
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
	k := int(math.Ceil(p*float64(len(xs)))) - 1
	if k < 0 {
		k = 0
	}
	if k >= len(xs) {
		k = len(xs) - 1
	}
	return xs[k]
}

func main() {
	cfg := must(config.Load())
	model.SetEmailPolicy(model.EmailPolicy{Suffix: cfg.Campus.EmailSuffix, AdminSentinel: cfg.Admin.Email})
	db := must(database.InitDB(cfg))
	ctx := context.Background()

	n := envInt("N", 1000)
	postsPerUser := envInt("POSTS", 3)
	conc := envInt("CONC", 4)
	pageSize := envInt("PAGE", 20)

	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	postRepo := repository.NewPostRepository(db)
	relSvc := service.NewRelationshipService(followRepo, userRepo, nil)
	postSvc := service.NewPostService(postRepo, repository.NewCommentRepository(db), repository.NewLikeRepository(db))

	// u[0] 是大 V，其余用户都关注他
	users := make([]*model.User, n)
	batch := 500
	for i := 0; i < n; i++ {
		tag := uuid.NewString()[:8]
		users[i] = &model.User{
			FirstName: "Seed" + strconv.Itoa(i),
			LastName:  "User",
			Email:     "seed." + tag + cfg.Campus.EmailSuffix,
			Role:      model.RoleStudent,
			Verified:  true,
		}
		if (i+1)%batch == 0 || i == n-1 {
			sub := users[i-i%batch : i+1]
			if err := db.CreateInBatches(sub, batch).Error; err != nil {
				panic(err)
			}
		}
	}
	celeb := users[0]

	followRecs := timed(n-1, conc, func(i int) {
		_ = relSvc.Follow(ctx, users[i+1].ID, celeb.ID)
	})

	postStart := time.Now()
	var postIDs []uint
	for _, u := range users {
		for k := 0; k < postsPerUser; k++ {
			p, err := postSvc.CreatePost(ctx, u, fmt.Sprintf("seed post %d by %s", k, u.FirstName))
			if err == nil {
				postIDs = append(postIDs, p.ID)
			}
		}
	}
	postDur := time.Since(postStart)

	likeRecs := timed(len(postIDs), conc, func(i int) {
		_ = postSvc.ToggleLike(ctx, users[i%n], postIDs[i], true)
	})

	q0 := time.Now()
	_, _ = relSvc.ListFollowers(ctx, celeb.ID, 1, pageSize)
	followersDur := time.Since(q0)

	q1 := time.Now()
	_, _ = relSvc.CountFollowers(ctx, celeb.ID)
	countDur := time.Since(q1)

	feedRecs := timed(envInt("FEEDS", 50), conc, func(i int) {
		_, _ = postSvc.Feed(ctx, users[i%n], service.FeedQuery{Page: i%5 + 1, PageSize: pageSize})
	})

	fmt.Printf("N=%d, POSTS=%d, CONC=%d, PAGE=%d\n", n, postsPerUser, conc, pageSize)
	fmt.Printf("Follow latency p50: %v, p95: %v, p99: %v\n", pct(followRecs, 0.50), pct(followRecs, 0.95), pct(followRecs, 0.99))
	fmt.Printf("Create %d posts total: %v\n", len(postIDs), postDur)
	fmt.Printf("Like latency p50: %v, p95: %v, p99: %v\n", pct(likeRecs, 0.50), pct(likeRecs, 0.95), pct(likeRecs, 0.99))
	fmt.Printf("Query followers(%d) latency: %v, count latency: %v\n", pageSize, followersDur, countDur)
	fmt.Printf("Feed page latency p50: %v, p95: %v, p99: %v\n", pct(feedRecs, 0.50), pct(feedRecs, 0.95), pct(feedRecs, 0.99))
}

// timed 用 conc 个 worker 执行 total 次 op，返回每次耗时
func timed(total, conc int, op func(i int)) []time.Duration {
	if total <= 0 {
		return nil
	}
	if conc > total {
		conc = total
	}
	feed := make(chan int, total)
	for i := 0; i < total; i++ {
		feed <- i
	}
	close(feed)

	out := make(chan time.Duration, total)
	done := make(chan struct{}, conc)
	for w := 0; w < conc; w++ {
		go func() {
			for i := range feed {
				st := time.Now()
				op(i)
				out <- time.Since(st)
			}
			done <- struct{}{}
		}()
	}
	for w := 0; w < conc; w++ {
		<-done
	}
	close(out)
	recs := make([]time.Duration, 0, total)
	for d := range out {
		recs = append(recs, d)
	}
	return recs
}
