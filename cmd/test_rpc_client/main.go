package main

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	grpcpool "github.com/JoeShih716/go-economy-ledger/pkg/grpc"
	pb "github.com/JoeShih716/go-economy-ledger/proto"
)

const (
	Target      = "localhost:50051"
	TotalCount  = 100000
	Concurrency = 500
)

func main() {
	pool := grpcpool.NewPool()
	defer pool.Close()

	conn, err := pool.Get(Target)
	if err != nil {
		log.Fatalf("did not connect: %v", err)
	}
	c := pb.NewEconomyServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	// 準備兩個帳戶 (已存在時忽略失敗)
	for _, id := range []string{"bench-1", "bench-2"} {
		resp, err := c.CreateAccount(ctx, &pb.CreateAccountRequest{AccountId: id, DisplayName: id})
		if err != nil {
			log.Fatalf("CreateAccount(%s): %v", id, err)
		}
		if !resp.Success {
			log.Printf("CreateAccount(%s): %s", id, resp.Message)
		}
	}

	var wg sync.WaitGroup
	wg.Add(TotalCount)

	sem := make(chan struct{}, Concurrency)

	startTime := time.Now()

	for i := 0; i < TotalCount; i++ {
		sem <- struct{}{}

		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			_, err := c.Transact(ctx, &pb.TransactRequest{
				RefId:       uuid.New().String(),
				Type:        pb.TransactionType_DEPOSIT,
				ToAccountId: "bench-1",
				Amount:      "1.5",
			})
			if err != nil {
				if idx%10000 == 0 {
					log.Printf("Transact %d failed: %v", idx, err)
				}
			}
		}(i)
	}

	wg.Wait()

	elapsed := time.Since(startTime)
	fmt.Printf("Completed %d requests in %v\n", TotalCount, elapsed)
	fmt.Printf("TPS: %.2f\n", float64(TotalCount)/elapsed.Seconds())

	// 轉帳一筆並查餘額收尾
	transferResp, err := c.Transact(ctx, &pb.TransactRequest{
		RefId:         uuid.New().String(),
		Type:          pb.TransactionType_TRANSFER,
		FromAccountId: "bench-1",
		ToAccountId:   "bench-2",
		Amount:        "1000",
	})
	if err != nil {
		log.Fatalf("Transfer: %v", err)
	}
	fmt.Printf("Transfer success=%v balance=%s\n", transferResp.Success, transferResp.CurrentBalance)

	balance, err := c.GetBalance(ctx, &pb.GetBalanceRequest{AccountId: "bench-2"})
	if err != nil {
		log.Fatalf("GetBalance: %v", err)
	}
	fmt.Printf("bench-2: %s\n", balance.Formatted)

	stats, err := c.GetEconomyStats(ctx, &pb.GetEconomyStatsRequest{})
	if err != nil {
		log.Fatalf("GetEconomyStats: %v", err)
	}
	fmt.Printf("accounts=%d total=%s\n", stats.TotalAccounts, stats.TotalValue)
}
