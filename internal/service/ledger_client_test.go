package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"campus-ledger/internal/adapter/storage/memory"
	"campus-ledger/internal/core/domain"
	"campus-ledger/internal/core/ports"
	"campus-ledger/internal/core/ports/mocks"
	"campus-ledger/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type clientTestDeps struct {
	client   *LedgerClient
	modes    *mocks.MockModeService
	local    *mocks.MockLedgerBackend
	remote   *mocks.MockLedgerBackend
	notifier *mocks.MockNotifier
	store    *memory.StateStore
	built    int
}

func setupLedgerClient(t *testing.T, mode domain.Mode) *clientTestDeps {
	ctrl := gomock.NewController(t)
	d := &clientTestDeps{
		modes:    mocks.NewMockModeService(ctrl),
		local:    mocks.NewMockLedgerBackend(ctrl),
		remote:   mocks.NewMockLedgerBackend(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
		store:    memory.NewStateStore(),
	}
	d.modes.EXPECT().Mode().Return(mode).AnyTimes()
	d.client = NewLedgerClient(d.modes, d.local, func() ports.LedgerBackend {
		d.built++
		return d.remote
	}, d.store, d.notifier, LedgerClientConfig{
		StoreAddress: "0x0999",
		ExplorerURL:  "https://sepolia.voyager.online/",
		Reward:       domain.MustAmount("10"),
		HistoryCap:   domain.DefaultHistoryCap,
	}, zerolog.Nop())
	return d
}

func TestLedgerClient_DispatchesByMode(t *testing.T) {
	t.Run("simulated uses local", func(t *testing.T) {
		d := setupLedgerClient(t, domain.ModeSimulated)
		d.local.EXPECT().GetBalance(gomock.Any(), "").Return("30", nil)

		balance, err := d.client.GetBalance(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, "30", balance)
		assert.Zero(t, d.built)
	})

	t.Run("remote is built lazily once", func(t *testing.T) {
		d := setupLedgerClient(t, domain.ModeRemote)
		d.remote.EXPECT().GetBalance(gomock.Any(), "0xabc").Return("5", nil).Times(2)

		_, err := d.client.GetBalance(context.Background(), "0xabc")
		require.NoError(t, err)
		_, err = d.client.GetBalance(context.Background(), "0xabc")
		require.NoError(t, err)
		assert.Equal(t, 1, d.built)
	})
}

func TestLedgerClient_RemoteBeforeInitialize(t *testing.T) {
	d := setupLedgerClient(t, domain.ModeRemote)
	d.remote.EXPECT().CheckIn(gomock.Any()).Return("", apperror.ErrNotInitialized())
	d.notifier.EXPECT().Notify(gomock.Any(), domain.SeverityError, gomock.Any())

	_, err := d.client.CheckIn(context.Background())
	assert.True(t, apperror.HasCode(err, apperror.CodeNotInitialized))
}

func TestLedgerClient_Initialize(t *testing.T) {
	d := setupLedgerClient(t, domain.ModeSimulated)
	session := &ports.Session{Address: "0xabc"}

	d.local.EXPECT().Initialize(session).Return(nil)
	d.remote.EXPECT().Initialize(session).Return(nil)
	assert.NoError(t, d.client.Initialize(session))

	d.local.EXPECT().Initialize(nil).Return(nil)
	d.remote.EXPECT().Initialize(nil).Return(apperror.ErrSessionRequired())
	err := d.client.Initialize(nil)
	assert.True(t, apperror.HasCode(err, apperror.CodeSessionRequired))
}

func TestLedgerClient_CheckInRecordsActivity(t *testing.T) {
	d := setupLedgerClient(t, domain.ModeRemote)
	ctx := context.Background()
	d.remote.EXPECT().CheckIn(gomock.Any()).Return("0xfeed", nil)
	d.notifier.EXPECT().Notify(gomock.Any(), domain.SeveritySuccess, "Checked in! +10 CPT")

	txHash, err := d.client.CheckIn(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0xfeed", txHash)

	history, err := d.client.History(ctx, "")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, domain.TransactionKindReward, history[0].Kind)
	assert.Equal(t, "10", history[0].Amount)
	assert.Equal(t, "0xfeed", history[0].TxHash)
}

func TestLedgerClient_PurchaseValidatesAmount(t *testing.T) {
	d := setupLedgerClient(t, domain.ModeSimulated)

	for _, amount := range []string{"0", "-5", "abc", ""} {
		_, err := d.client.Purchase(context.Background(), amount)
		assert.True(t, apperror.HasCode(err, apperror.CodeInvalidAmount), amount)
	}
}

func TestLedgerClient_RejectsAmountsWithoutExactBaseUnits(t *testing.T) {
	tests := []struct {
		name   string
		amount string
	}{
		{"nineteen fractional digits", "0.0000000000000000001"},
		{"excess precision with integer part", "3.1234567890123456789"},
		{"exponent notation", "1e50000000"},
		{"small exponent", "2E1"},
		{"above u256", "115792089237316195423570985008687907853269984665640564039457.584007913129639936"},
	}

	for _, mode := range []domain.Mode{domain.ModeSimulated, domain.ModeRemote} {
		for _, tt := range tests {
			t.Run(string(mode)+"/"+tt.name, func(t *testing.T) {
				d := setupLedgerClient(t, mode)

				_, err := d.client.Purchase(context.Background(), tt.amount)
				assert.True(t, apperror.HasCode(err, apperror.CodeInvalidAmount))

				_, err = d.client.Transfer(context.Background(), "0x0abc", tt.amount)
				assert.True(t, apperror.HasCode(err, apperror.CodeInvalidAmount))

				history, _ := d.client.History(context.Background(), "")
				assert.Empty(t, history)
			})
		}
	}
}

func TestLedgerClient_RemotePurchaseAtU256Limit(t *testing.T) {
	ctrl := gomock.NewController(t)
	account := mocks.NewMockAccount(ctrl)
	modes := mocks.NewMockModeService(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	modes.EXPECT().Mode().Return(domain.ModeRemote).AnyTimes()
	notifier.EXPECT().Notify(gomock.Any(), domain.SeveritySuccess, gomock.Any())

	remote := NewRemoteLedger(RemoteLedgerConfig{
		PointsAddress:   testPointsAddress,
		IdentityAddress: testIdentityAddress,
		ConfirmPolicy:   Backoff{Attempts: 5, Factor: 1},
		ReadPolicy:      Backoff{Attempts: 3, Factor: 2},
	}, zerolog.Nop())
	require.NoError(t, remote.Initialize(&ports.Session{Address: testWalletAddress, Account: account}))

	client := NewLedgerClient(modes, mocks.NewMockLedgerBackend(ctrl), func() ports.LedgerBackend {
		return remote
	}, memory.NewStateStore(), notifier, LedgerClientConfig{
		StoreAddress: "0x0ddd",
		Reward:       domain.MustAmount("10"),
		HistoryCap:   domain.DefaultHistoryCap,
	}, zerolog.Nop())

	u128Max := "0x" + strings.Repeat("f", 32)
	account.EXPECT().Invoke(gomock.Any(), ports.Call{
		ContractAddress: "0xaaa",
		Entrypoint:      entryPurchase,
		Calldata:        []string{"0xddd", u128Max, u128Max},
	}).Return(testTxHash, nil)
	account.EXPECT().WaitForTransaction(gomock.Any(), testTxHash).Return(domain.ConfirmationConfirmed, nil)

	const maxU256 = "115792089237316195423570985008687907853269984665640564039457.584007913129639935"
	txHash, err := client.Purchase(context.Background(), maxU256)
	require.NoError(t, err)
	assert.Equal(t, testTxHash, txHash)

	spend, _ := client.History(context.Background(), domain.TransactionKindSpend)
	require.Len(t, spend, 1)
	assert.Equal(t, maxU256, spend[0].Amount)
}

func TestLedgerClient_PurchasePaysStore(t *testing.T) {
	d := setupLedgerClient(t, domain.ModeSimulated)
	d.local.EXPECT().Purchase(gomock.Any(), "0x0999", domain.MustAmount("12.5")).Return("0x01", nil)
	d.notifier.EXPECT().Notify(gomock.Any(), domain.SeveritySuccess, "Purchase: -12.5 CPT")

	_, err := d.client.Purchase(context.Background(), "12.5")
	require.NoError(t, err)

	spend, _ := d.client.History(context.Background(), domain.TransactionKindSpend)
	require.Len(t, spend, 1)
	assert.Equal(t, "Purchase", spend[0].Description)
}

func TestLedgerClient_PurchaseProduct(t *testing.T) {
	d := setupLedgerClient(t, domain.ModeSimulated)
	d.local.EXPECT().Purchase(gomock.Any(), "0x0999", domain.MustAmount("30")).Return("0x02", nil)
	d.notifier.EXPECT().Notify(gomock.Any(), domain.SeveritySuccess, gomock.Any())

	_, err := d.client.PurchaseProduct(context.Background(), "bread")
	require.NoError(t, err)

	history, _ := d.client.History(context.Background(), "")
	require.Len(t, history, 1)
	assert.Equal(t, "Purchased Bread", history[0].Description)

	_, err = d.client.PurchaseProduct(context.Background(), "caviar")
	assert.True(t, apperror.HasCode(err, apperror.CodeNotFound))
}

func TestLedgerClient_PurchaseInsufficientBalance(t *testing.T) {
	d := setupLedgerClient(t, domain.ModeSimulated)
	d.local.EXPECT().Purchase(gomock.Any(), gomock.Any(), gomock.Any()).Return("", apperror.ErrInsufficientBalance())
	d.notifier.EXPECT().Notify(gomock.Any(), domain.SeverityError, "Insufficient balance")

	_, err := d.client.Purchase(context.Background(), "100")
	assert.True(t, apperror.HasCode(err, apperror.CodeInsufficientBalance))

	history, _ := d.client.History(context.Background(), "")
	assert.Empty(t, history)
}

func TestLedgerClient_TimeoutIsAWarning(t *testing.T) {
	d := setupLedgerClient(t, domain.ModeRemote)
	timeout := apperror.ErrConfirmationTimeout("0xabc")
	d.remote.EXPECT().CheckIn(gomock.Any()).Return("", timeout)
	d.notifier.EXPECT().Notify(gomock.Any(), domain.SeverityWarning, timeout.Message)

	_, err := d.client.CheckIn(context.Background())
	assert.True(t, apperror.HasCode(err, apperror.CodeConfirmationTimeout))

	history, _ := d.client.History(context.Background(), "")
	assert.Empty(t, history)
}

func TestLedgerClient_ForeignErrorsBecomeUnknown(t *testing.T) {
	d := setupLedgerClient(t, domain.ModeSimulated)
	d.local.EXPECT().GetIdentityInfo(gomock.Any(), domain.DefaultTokenID).Return(nil, errors.New("disk on fire"))

	_, err := d.client.GetIdentityInfo(context.Background(), "")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeUnknown, appErr.Code)
	assert.Equal(t, "disk on fire", appErr.Message)
}

func TestLedgerClient_Transfer(t *testing.T) {
	d := setupLedgerClient(t, domain.ModeSimulated)

	_, err := d.client.Transfer(context.Background(), " ", "5")
	assert.True(t, apperror.HasCode(err, apperror.CodeValidation))

	recipient := "0x123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"
	d.local.EXPECT().Transfer(gomock.Any(), recipient, domain.MustAmount("5")).Return("0x03", nil)
	d.notifier.EXPECT().Notify(gomock.Any(), domain.SeveritySuccess, "Sent 5 CPT to 0x1234...cdef")

	_, err = d.client.Transfer(context.Background(), recipient, "5")
	require.NoError(t, err)

	history, _ := d.client.History(context.Background(), domain.TransactionKindSpend)
	require.Len(t, history, 1)
	assert.Equal(t, "Transfer to 0x1234...cdef", history[0].Description)
}

func TestLedgerClient_MintIdentity(t *testing.T) {
	d := setupLedgerClient(t, domain.ModeSimulated)

	_, err := d.client.MintIdentity(context.Background(), domain.IdentityMetadata{StudentID: "1"})
	assert.True(t, apperror.HasCode(err, apperror.CodeValidation))

	meta := domain.IdentityMetadata{AvatarURI: domain.DemoAvatars[1], StudentName: "Lan", StudentID: "SE1"}
	d.local.EXPECT().MintIdentity(gomock.Any(), meta).Return(&domain.MintResult{TokenID: "1", TxHash: "0x04"}, nil)
	d.notifier.EXPECT().Notify(gomock.Any(), domain.SeveritySuccess, gomock.Any())

	res, err := d.client.MintIdentity(context.Background(), domain.IdentityMetadata{
		AvatarURI: meta.AvatarURI, StudentName: " Lan ", StudentID: "SE1",
	})
	require.NoError(t, err)
	assert.Equal(t, "0x04", res.TxHash)
}

func TestLedgerClient_HistoryIsCappedAndFiltered(t *testing.T) {
	d := setupLedgerClient(t, domain.ModeSimulated)
	ctx := context.Background()
	d.local.EXPECT().CheckIn(gomock.Any()).Return("0x05", nil).Times(domain.DefaultHistoryCap)
	d.local.EXPECT().Purchase(gomock.Any(), gomock.Any(), gomock.Any()).Return("0x06", nil)
	d.notifier.EXPECT().Notify(gomock.Any(), domain.SeveritySuccess, gomock.Any()).AnyTimes()

	for i := 0; i < domain.DefaultHistoryCap; i++ {
		_, err := d.client.CheckIn(ctx)
		require.NoError(t, err)
	}
	_, err := d.client.Purchase(ctx, "1")
	require.NoError(t, err)

	all, _ := d.client.History(ctx, "")
	require.Len(t, all, domain.DefaultHistoryCap)
	assert.Equal(t, "0x06", all[0].TxHash)

	rewards, _ := d.client.History(ctx, domain.TransactionKindReward)
	assert.Len(t, rewards, domain.DefaultHistoryCap-1)
}

func TestLedgerClient_ProductsAndExplorer(t *testing.T) {
	d := setupLedgerClient(t, domain.ModeSimulated)

	assert.Len(t, d.client.Products(), 3)
	assert.Equal(t, "https://sepolia.voyager.online/tx/0xabc", d.client.ExplorerTxURL("0xabc"))
	assert.Equal(t, domain.ModeSimulated, d.client.Mode())
}
