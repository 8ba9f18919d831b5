package grpc

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/JoeShih716/go-economy-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-economy-ledger/internal/app/core/usecase"
	pb "github.com/JoeShih716/go-economy-ledger/proto"
)

type GrpcServer struct {
	pb.UnimplementedEconomyServiceServer
	economy  *usecase.Economy
	transfer *usecase.TransferCoordinator
	logger   *zap.Logger
}

func NewGrpcServer(economy *usecase.Economy, transfer *usecase.TransferCoordinator, logger *zap.Logger) *GrpcServer {
	return &GrpcServer{
		economy:  economy,
		transfer: transfer,
		logger:   logger,
	}
}

func (s *GrpcServer) Transact(ctx context.Context, req *pb.TransactRequest) (*pb.TransactResponse, error) {
	// 1. UUID 解析
	if _, err := uuid.Parse(req.RefId); err != nil {
		return &pb.TransactResponse{
			Success: false,
			Message: "invalid ref_id: " + err.Error(),
		}, nil
	}

	// 2. 金額解析 (十進位字串)
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return &pb.TransactResponse{
			Success: false,
			Message: "invalid amount: " + err.Error(),
		}, nil
	}

	// 3. 執行交易
	var balance decimal.Decimal
	switch req.Type {
	case pb.TransactionType_DEPOSIT:
		balance, err = s.economy.Deposit(ctx, req.ToAccountId, amount)
	case pb.TransactionType_WITHDRAW:
		balance, err = s.economy.Withdraw(ctx, req.FromAccountId, amount)
	case pb.TransactionType_TRANSFER:
		_, err = s.transfer.Transfer(ctx, req.FromAccountId, req.ToAccountId, amount)
		// 補償失敗屬於系統性錯誤，不走 Soft Failure
		if usecase.IsDoubleFault(err) {
			return nil, status.Error(codes.Internal, err.Error())
		}
		if err == nil {
			balance, err = s.economy.GetBalance(ctx, req.FromAccountId)
		}
	default:
		return &pb.TransactResponse{
			Success: false,
			Message: "invalid transaction type",
		}, nil
	}

	if err != nil {
		// 業務邏輯錯誤，回傳 Success=false (Soft Failure)
		return &pb.TransactResponse{
			Success: false,
			Message: err.Error(),
		}, nil
	}

	return &pb.TransactResponse{
		Success:        true,
		CurrentBalance: balance.String(),
	}, nil
}

func (s *GrpcServer) CreateAccount(ctx context.Context, req *pb.CreateAccountRequest) (*pb.CreateAccountResponse, error) {
	account, err := s.economy.CreateAccount(ctx, req.AccountId, req.DisplayName)
	if err != nil {
		if errors.Is(err, domain.ErrAccountAlreadyExists) || errors.Is(err, domain.ErrEmptyAccountID) {
			return &pb.CreateAccountResponse{
				Success: false,
				Message: err.Error(),
			}, nil
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &pb.CreateAccountResponse{
		Success: true,
		Balance: account.Balance.String(),
	}, nil
}

func (s *GrpcServer) GetBalance(ctx context.Context, req *pb.GetBalanceRequest) (*pb.GetBalanceResponse, error) {
	balance, err := s.economy.GetBalance(ctx, req.AccountId)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &pb.GetBalanceResponse{
		Balance:   balance.String(),
		Formatted: s.economy.FormatAmount(balance),
	}, nil
}

func (s *GrpcServer) GetTopAccounts(ctx context.Context, req *pb.GetTopAccountsRequest) (*pb.GetTopAccountsResponse, error) {
	limit := int(req.Limit)
	if limit <= 0 {
		limit = 10
	}
	accounts, err := s.economy.TopAccounts(ctx, limit)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	resp := &pb.GetTopAccountsResponse{
		Accounts: make([]*pb.AccountInfo, 0, len(accounts)),
	}
	for _, a := range accounts {
		resp.Accounts = append(resp.Accounts, &pb.AccountInfo{
			AccountId:   a.ID,
			DisplayName: a.DisplayName,
			Balance:     a.Balance.String(),
		})
	}
	return resp, nil
}

func (s *GrpcServer) GetEconomyStats(ctx context.Context, req *pb.GetEconomyStatsRequest) (*pb.GetEconomyStatsResponse, error) {
	total, err := s.economy.TotalAccounts(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	sum, err := s.economy.TotalValue(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &pb.GetEconomyStatsResponse{
		TotalAccounts: total,
		TotalValue:    sum.String(),
	}, nil
}
